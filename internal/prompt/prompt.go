package prompt

import (
	"fmt"
	"strings"

	"smartstudy/internal/domain"
)

// SystemMessage is the fixed role framing. Completion calls send it as the
// system message; the vision prompt embeds it inline because the vision API
// takes a single text part.
const SystemMessage = "You are SmartStudy AI — an intelligent study assistant."

// DefaultVisionQuestion is used when an image is submitted without a question.
const DefaultVisionQuestion = "Please analyze this image and explain what you see. " +
	"Consider any text, diagrams, mathematical equations, or scientific concepts shown."

// Summary builds the prompt for summarizing extracted text.
func Summary(text string) string {
	return fmt.Sprintf(`Please analyze the following text and provide a clear, concise summary. Focus on:
- Key concepts and main ideas
- Important facts and definitions
- Logical structure and flow

Text to summarize:
%s

Provide a well-structured summary with headings and bullet points where appropriate:`, text)
}

// Explain builds the prompt for a beginner-friendly explanation. An empty
// topic omits the focus line.
func Explain(text, topic string) string {
	topicContext := ""
	if strings.TrimSpace(topic) != "" {
		topicContext = fmt.Sprintf("Focus specifically on: %s\n\n", topic)
	}
	return fmt.Sprintf(`%sPlease explain the following content in a clear, beginner-friendly manner:
- Use simple language and avoid jargon when possible
- Provide analogies and real-life examples where helpful
- Break down complex topics into digestible parts
- Use headings, bullet points, and examples for clarity

Content to explain:
%s

Provide a structured explanation:`, topicContext, text)
}

// Quiz builds the quiz-generation prompt, embedding the exact output schema
// the model is instructed to mimic. The directive to return only JSON is a
// best-effort contract; normalization guards the other side of it.
func Quiz(text string, numQuestions int, questionType, difficulty string) string {
	var typeInstructions string
	switch questionType {
	case domain.QuestionTypeMultipleChoice:
		typeInstructions = "Generate only multiple-choice questions with 4 options each and clearly mark the correct answer."
	case domain.QuestionTypeShortAnswer:
		typeInstructions = "Generate only short-answer questions that require brief written responses."
	default:
		typeInstructions = "Generate a mix of multiple-choice questions (with 4 options each) and short-answer questions."
	}

	return fmt.Sprintf(`Generate %d well-structured quiz questions from the following text.

Requirements:
- %s
- Difficulty level: %s
- Cover both factual information and conceptual understanding
- Questions should test comprehension, not just memorization
- For multiple-choice: the correctAnswer must exactly match one of the four options
- Include a brief explanation or hint where appropriate

Text content:
%s

Please generate the quiz in the following JSON format:
{
  "questions": [
    {
      "type": "multiple-choice" or "short-answer",
      "question": "Question text",
      "options": ["Option A", "Option B", "Option C", "Option D"] (only for multiple-choice),
      "correctAnswer": "Correct answer text",
      "explanation": "Brief explanation"
    }
  ]
}

Return ONLY valid JSON, no additional text:`, numQuestions, typeInstructions, difficulty, text)
}

// Vision builds the prompt for analyzing an image. An empty question falls
// back to DefaultVisionQuestion; an empty context omits the context line.
func Vision(question, context string) string {
	if strings.TrimSpace(question) == "" {
		question = DefaultVisionQuestion
	}
	contextPrompt := ""
	if strings.TrimSpace(context) != "" {
		contextPrompt = fmt.Sprintf("\nAdditional Context: %s", context)
	}
	return fmt.Sprintf(`%s You specialize in visual analysis.

When analyzing images, you should:
- Carefully identify all objects, text labels, diagrams, or relationships shown
- Understand the user's question or task
- Perform necessary reasoning or calculations
- Provide clear, step-by-step explanations
- Use equations or formulas where relevant
- Format responses with headings, bullet points, and examples when helpful
- Be educational and structured in your response

Question: %s%s

Please analyze the image and provide a comprehensive answer:`, SystemMessage, question, contextPrompt)
}
