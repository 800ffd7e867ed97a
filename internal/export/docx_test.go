package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleMinutes = `# Weekly Sync

## Attendees
- Alice
* Bob

---

**Decision:** ship the release on Friday.
`

func TestParseBlocks(t *testing.T) {
	blocks := parseBlocks(sampleMinutes)

	require.Len(t, blocks, 5)
	assert.Equal(t, block{text: "Weekly Sync", heading: 1}, blocks[0])
	assert.Equal(t, block{text: "Attendees", heading: 2}, blocks[1])
	assert.Equal(t, block{text: "Alice", bullet: true}, blocks[2])
	assert.Equal(t, block{text: "Bob", bullet: true}, blocks[3])
	assert.Equal(t, block{text: "**Decision:** ship the release on Friday."}, blocks[4])
}

func TestHeadingSize(t *testing.T) {
	assert.Equal(t, uint64(16), headingSize(1))
	assert.Equal(t, uint64(14), headingSize(3))
	assert.Equal(t, uint64(fontSize), headingSize(5))
}

func TestCleanMarkdownInline(t *testing.T) {
	assert.Equal(t, "bold and code", cleanMarkdownInline("**bold** and `code`"))
}

func TestWriteDocx(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minutes.docx")

	require.NoError(t, WriteDocx("Meeting Minutes", sampleMinutes, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
