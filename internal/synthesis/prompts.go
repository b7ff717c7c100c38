// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package synthesis

import (
	"bytes"
	"text/template"
)

// syllabusPromptTmpl instructs the model to analyze raw student discussion
// and construct the Ghost Syllabus. The header list is the contract the
// extraction pipeline depends on: output must use exactly these "##" headers.
var syllabusPromptTmpl = template.Must(template.New("syllabus").Parse(`Context: You are an "Academic Strategist" for a study aid called Phantasm.
Task: Analyze the following raw student discussion data about the course "{{.CourseCode}}" at "{{.University}}" {{.ProfContext}} and construct a "Ghost Syllabus".

Raw Discussion Data:
{{.Discussion}}
{{if .HasAttachment}}
IMPORTANT: An image or PDF of the OFFICIAL syllabus has been provided.
Compare the "Official" rules in the document vs. the "Real" student experiences in the discussion data.
{{end}}
Format Requirements:
Output strictly in Markdown.
Use exactly the following headers (using ## syntax):
{{if .HasAttachment}}
## Syllabus vs Reality
(Crucial Section: Bullet points comparing "Official Policy" vs "Student Reality". Example: "Syllabus says 5% participation, students say he never checks.")
{{end}}
## Reality Check
(General difficulty and vibe. Analyze teaching style, grading quirks, or reputation.)

## Hidden Prerequisites
(What you actually need to know before taking this class.)

## Panic Zones
(Midterms, specific hard topics, or weeks to watch out for.)

## Golden Resources
(Textbook PDFs, cheat sheets, or drive links mentioned in threads.)

## Phantom Library
(Curated Video Vault. List high-quality YouTube resources. Organize by "Unit" or "Module". Format: "### Unit 1: Topic" followed by bullet points "- [Video Title](URL)".)

Tone: Strategic, slightly secretive, helpful, student-to-student advice.
`))

// cramPromptTmpl instructs the model to produce a ruthless survival schedule
// as JSON matching the cram plan schema.
var cramPromptTmpl = template.Must(template.New("cram").Parse(`Role: You are an Academic Triage Surgeon.
Situation: A student is panicking. They have a {{.ExamType}} for {{.CourseCode}} in exactly {{.HoursAvailable}}.

Input Context (Course Info):
{{.Context}}

Mission:
1. Cut 80% of the curriculum. We are not aiming for an A+, we are aiming to pass/survive.
2. Create a minute-by-minute survival checklist.
3. Identify exactly what to IGNORE (The Sacrifice).

CRITICAL INSTRUCTION:
If the provided context is empty or vague, YOU MUST INVENT A GENERIC BUT PLAUSIBLE PLAN for a Computer Science/Engineering course.
DO NOT return empty arrays. The student needs a plan, even a generic one.

For each timeblock, you MUST provide a "videoSuggestion":
- "title": A concise title of a YouTube video (real or hypothetical) that explains this topic perfectly.
- "url": A direct YouTube link. If you do not know a specific URL, generate a YouTube Search URL for the topic (e.g. https://www.youtube.com/results?search_query=topic).

Output JSON only, matching:
{"examType": "{{.ExamType}}", "totalHours": "{{.HoursAvailable}}", "strategy": "A 2-sentence ruthless strategy summary.", "schedule": [{"timeblock": "Hour 1", "action": "Exact topic/formula to memorize", "priority": "CRITICAL", "notes": "Why this matters", "videoSuggestion": {"title": "Learn X in 10 mins", "url": "..."}}]}
`))

// briefingPromptTmpl instructs the TTS model to deliver a short dramatic
// radio news flash over the syllabus text.
var briefingPromptTmpl = template.Must(template.New("briefing").Parse(`Act as a fast-talking 1930s Transatlantic Radio News Anchor (Mid-Atlantic accent).

Give a 45-second "News Flash" summary of this course based on the text below.
Focus on the "Panic Zones" and "Reality Check".
Be dramatic, old-timey, and urgent. Start with "This is Phantasm Radio reporting live!"

Source Text:
{{.Text}}
`))

// ratingPromptTmpl instructs the model to look up review scores with strict
// no-guessing rules; the hallucination guard in ParseRating backs them up.
var ratingPromptTmpl = template.Must(template.New("rating").Parse(`Search for the RateMyProfessors profile for "{{.Professor}}" at "{{.University}}".

STRICT RULES:
1. First, identify the correct full name of the professor at this university. Use Google Search to correct any misspellings in the input name.
2. You must find the numeric scores: "Overall Quality" (1-5), "Level of Difficulty" (1-5), and "Would Take Again" (%).
3. If you cannot find a matching profile, OR if the numeric scores are missing/hidden, set 'found' to FALSE.
4. DO NOT GUESS or hallucinate numbers. If unsure, set 'found' to FALSE.
5. Provide a 1-sentence summary based on the reviews if found.
6. Return the CORRECT FULL NAME of the professor as found on the site.
`))

const (
	// maxContextChars caps the syllabus context embedded in a cram prompt.
	maxContextChars = 10000

	// maxBriefingChars caps the source text handed to the TTS model.
	maxBriefingChars = 2000

	// noContextFallback stands in when no syllabus context is available.
	noContextFallback = "No specific syllabus provided. Infer standard topics for this course code based on its name."
)

func renderTemplate(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// truncate caps s at limit characters, marking the cut.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "...(truncated)"
}

func syllabusPrompt(req SyllabusRequest) (string, error) {
	profContext := "with no specific professor specified"
	if req.Professor != "" {
		profContext = `taught by Professor ` + req.Professor
	}
	return renderTemplate(syllabusPromptTmpl, struct {
		CourseCode    string
		University    string
		ProfContext   string
		Discussion    string
		HasAttachment bool
	}{req.CourseCode, req.University, profContext, req.Discussion, req.Attachment != nil})
}

func cramPrompt(req CramRequest) (string, error) {
	contextText := req.Context
	if contextText == "" {
		contextText = noContextFallback
	} else {
		contextText = truncate(contextText, maxContextChars)
	}
	return renderTemplate(cramPromptTmpl, struct {
		ExamType       string
		CourseCode     string
		HoursAvailable string
		Context        string
	}{req.ExamType, req.CourseCode, req.HoursAvailable, contextText})
}

func briefingPrompt(syllabusText string) (string, error) {
	return renderTemplate(briefingPromptTmpl, struct{ Text string }{truncate(syllabusText, maxBriefingChars)})
}

func ratingPrompt(university, professor string) (string, error) {
	return renderTemplate(ratingPromptTmpl, struct {
		Professor  string
		University string
	}{professor, university})
}
