package ai

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
)

type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

const quizSystemPrompt = "You are an expert educational content creator who provides responses in perfect JSON format."

// GenerateQuizQuestions asks the AI collaborator for a five-question multiple
// choice set and falls back to deterministic templates on any failure, so quiz
// sessions always start.
func GenerateQuizQuestions(topic, difficulty string) []QuizQuestion {
	prompt := fmt.Sprintf(`Generate 5 multiple choice questions on the topic "%s" at %s difficulty.
Provide the response as a valid JSON array of objects.
Each object must have keys: "question", "options" (array of 4 strings), "correct_answer" (index 0-3), "explanation".
Do not include any text outside of the JSON array.`, topic, difficulty)

	content, err := ChatCompletion(quizSystemPrompt, prompt, 1200, 0.6)
	if err != nil {
		log.Printf("Quiz generation falling back to templates: %v", err)
		return FallbackQuestions(topic, difficulty)
	}

	questions, err := parseQuizQuestions(content)
	if err != nil {
		log.Printf("Quiz generation falling back to templates: %v", err)
		return FallbackQuestions(topic, difficulty)
	}
	return questions
}

func parseQuizQuestions(content string) ([]QuizQuestion, error) {
	raw, err := extractJSONArray(content)
	if err != nil {
		return nil, err
	}

	var questions []QuizQuestion
	if err := json.Unmarshal([]byte(raw), &questions); err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("empty question set")
	}
	for _, q := range questions {
		if q.Question == "" || len(q.Options) < 2 || q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
			return nil, fmt.Errorf("invalid question structure")
		}
	}
	return questions, nil
}

func extractJSONArray(content string) (string, error) {
	start := strings.Index(content, "[")
	end := strings.LastIndex(content, "]")
	if start == -1 || end == -1 || end < start {
		return "", fmt.Errorf("no JSON array found in the AI response")
	}
	return content[start : end+1], nil
}

// FallbackQuestions substitutes the topic into five canned templates. Medium
// and hard difficulties lexically bump the wording.
func FallbackQuestions(topic, difficulty string) []QuizQuestion {
	questions := []QuizQuestion{
		{
			Question:      fmt.Sprintf("What is the basic concept of %s?", topic),
			Options:       []string{"A fundamental principle", "A complex theory", "An advanced technique", "A simple method"},
			CorrectAnswer: 0,
			Explanation:   fmt.Sprintf("This covers the basic concept of %s.", topic),
		},
		{
			Question:      fmt.Sprintf("Which of the following is related to %s?", topic),
			Options:       []string{"Basic understanding", "Advanced application", "Complex analysis", "All of the above"},
			CorrectAnswer: 3,
			Explanation:   fmt.Sprintf("All these aspects are related to %s.", topic),
		},
		{
			Question:      fmt.Sprintf("How would you describe %s in simple terms?", topic),
			Options:       []string{"A complex system", "A basic framework", "An advanced methodology", "A simple approach"},
			CorrectAnswer: 1,
			Explanation:   fmt.Sprintf("%s can be understood as a basic framework for learning.", topic),
		},
		{
			Question:      fmt.Sprintf("What is the primary purpose of studying %s?", topic),
			Options:       []string{"To memorize facts", "To understand concepts", "To pass exams", "To impress others"},
			CorrectAnswer: 1,
			Explanation:   fmt.Sprintf("The main goal is to understand the underlying concepts of %s.", topic),
		},
		{
			Question:      fmt.Sprintf("Which approach is best for learning %s?", topic),
			Options:       []string{"Rote memorization", "Active engagement", "Passive reading", "Avoiding practice"},
			CorrectAnswer: 1,
			Explanation:   fmt.Sprintf("Active engagement is the most effective way to learn %s.", topic),
		},
	}

	switch difficulty {
	case "medium":
		for i := range questions {
			questions[i].Question = strings.ReplaceAll(questions[i].Question, "basic", "intermediate")
			questions[i].Question = strings.ReplaceAll(questions[i].Question, "simple", "moderate")
		}
	case "hard":
		for i := range questions {
			questions[i].Question = strings.ReplaceAll(questions[i].Question, "basic", "advanced")
			questions[i].Question = strings.ReplaceAll(questions[i].Question, "simple", "complex")
		}
	}
	return questions
}
