package tutor

import (
	"fmt"
	"strconv"
	"strings"
)

const feedbackSystemPrompt = `You are a helpful and encouraging Primary 5 math teacher.
Keep the tone friendly, supportive, and appropriate for a 10-11 year old student.
Return ONLY the feedback text, no additional formatting.`

// submitFeedbackPrompt builds the feedback request for a graded attempt.
// The instruction branches on the verdict: praise and reinforce when
// correct, explain the error and hint at the approach when not.
func submitFeedbackPrompt(problemText string, correctAnswer, userAnswer float64, isCorrect bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Problem: %s\n", problemText)
	fmt.Fprintf(&b, "Correct Answer: %s\n", formatAnswer(correctAnswer))
	fmt.Fprintf(&b, "Student's Answer: %s\n", formatAnswer(userAnswer))
	if isCorrect {
		b.WriteString("Result: CORRECT\n\n")
		b.WriteString(`Generate a personalized feedback message (2-3 sentences) that:
1. Praises the student for getting the correct answer
2. Briefly explains why the answer is correct or highlights the key concept
3. Encourages them to keep practicing`)
	} else {
		b.WriteString("Result: INCORRECT\n\n")
		b.WriteString(`Generate a personalized feedback message (2-3 sentences) that:
1. Gently explains what went wrong
2. Provides a hint or shows the correct approach
3. Encourages the student to try again`)
	}

	return b.String()
}

// revealFeedbackPrompt builds the feedback request for a student who chose
// to see the answer instead of attempting it.
func revealFeedbackPrompt(problemText string, correctAnswer float64) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Problem: %s\n", problemText)
	fmt.Fprintf(&b, "Correct Answer: %s\n\n", formatAnswer(correctAnswer))
	b.WriteString("The student has chosen to reveal the correct answer instead of continuing to try solving it themselves.\n\n")
	b.WriteString(`Generate a supportive feedback message (2-3 sentences) that:
1. Acknowledges their decision to reveal the answer
2. Explains the correct answer and the key concepts involved
3. Encourages them to try similar problems in the future`)

	return b.String()
}

// formatAnswer renders a numeric answer without trailing zeros.
func formatAnswer(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
