package tutor

import "fmt"

const systemPrompt = `You are an elite Physics Tutor for the Malaysian Matriculation syllabus.
Your goal is to provide responses that look like professional Study Notes.

FORMATTING RULES:
1. STRUCTURE: Use "###" for main headers and "---" for thematic dividers between sections.
2. LISTS: Use clear, spaced-out bullet points for definitions and steps.
3. MATH: Use LaTeX $...$ for all inline math and $$...$$ for block equations.
4. FRACTIONS: Always use strict LaTeX syntax: \frac{numerator}{denominator}. Never omit the backslash or the curly braces.
5. SYMBOLS: Strictly use the letter "w" for angular frequency instead of the Greek letter omega.
6. TONE: Professional, technical, and exam-oriented.`

const mathStandard = `MANDATORY: Use strict LaTeX for all math. For fractions, use \frac{a}{b} syntax only. Use the letter 'w' for angular frequency (NOT the Greek omega). Ensure clear step-by-step logic.`

func quizPrompt(count int, topic string) string {
	return fmt.Sprintf(`Generate %d Physics MCQs for %q. %s
Return ONLY a JSON array where each element has exactly these fields:
{"question": string, "options": [string], "answerIndex": int, "explanation": string, "hint": string}
answerIndex must be a valid index into options.`, count, topic, mathStandard)
}

func subjectiveQuizPrompt(count int, topic string) string {
	return fmt.Sprintf(`Generate %d subjective Physics questions for %q. %s
Return ONLY a JSON array where each element has exactly these fields:
{"question": string, "idealAnswer": string, "explanation": string, "hint": string}`, count, topic, mathStandard)
}

func flashcardsPrompt(topic string) string {
	return fmt.Sprintf(`Generate 6 Physics flashcards for %q. %s
Return ONLY a JSON array where each element has exactly these fields:
{"front": string, "back": string}`, topic, mathStandard)
}

func condensePrompt(notes string) string {
	return fmt.Sprintf(`Condense the following physics notes into a structured summary with key points, definitions, and essential formulas. %s

Notes:
%s`, mathStandard, notes)
}

func analyzePrompt() string {
	return fmt.Sprintf(`Analyze this physics problem. Provide a detailed, step-by-step solution. Identify its topic and relevant learning outcomes in the Malaysian Matriculation Physics syllabus. %s`, mathStandard)
}
