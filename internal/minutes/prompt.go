package minutes

import "fmt"

const chunkPrompt = "You are an assistant tasked with summarizing meeting transcripts into structured meeting minutes. " +
	"Extract key points and organize them under the following sections: " +
	"1. Meeting Title, 2. Date and Time, 3. Attendees, 4. Agenda, 5. Discussion Points, " +
	"6. Decisions Made, 7. Action Items, and 8. Next Meeting Details. " +
	"Ensure that each section is detailed and includes explanations, examples, or relevant information. " +
	"Provide full paragraphs under each section, with enough detail to capture the essence of the meeting. " +
	"Here's part %d of the transcript:\n\n%s"

const finalPrompt = "You are an assistant tasked with creating a detailed, comprehensive meeting minutes document. " +
	"For each section below, provide full, elaborated paragraphs with detailed explanations, examples, " +
	"and sufficient context. Avoid being overly concise. Focus on providing detailed descriptions of the key points, " +
	"decisions made, and action items discussed. Make sure each section is clear, with examples and enough information " +
	"to understand the discussions and decisions fully. The sections you should cover are:\n\n" +
	"%s\n\n" +
	"Please ensure the following sections are fully explained: Meeting Title, Date and Time, Attendees, Agenda, " +
	"Discussion Points, Decisions Made, Action Items, and Next Meeting Details."

// Sections lists the advisory headings every minutes document should cover.
var Sections = []string{
	"Meeting Title",
	"Date and Time",
	"Attendees",
	"Agenda",
	"Discussion Points",
	"Decisions Made",
	"Action Items",
	"Next Meeting Details",
}

// buildChunkPrompt labels the chunk at 0-based index as part index+1.
func buildChunkPrompt(chunk string, index int) string {
	return fmt.Sprintf(chunkPrompt, index+1, chunk)
}

func buildFinalPrompt(combined string) string {
	return fmt.Sprintf(finalPrompt, combined)
}
