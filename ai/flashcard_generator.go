package ai

import (
	"encoding/json"
	"fmt"
	"log"
)

type Flashcard struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

// GenerateFlashcards produces revision flashcards for a topic. The AI output
// is untrusted: anything that is not a JSON array of {term, definition}
// objects is rejected with ErrUnavailable.
func GenerateFlashcards(topic string) ([]Flashcard, error) {
	prompt := fmt.Sprintf(`Generate 5 concise flashcards for a student on the topic: "%s".
The flashcards should be for last-minute revision.
Provide the response as a valid JSON array of objects.
Each object must have two keys: "term" and "definition".
Do not include any text outside of the JSON array.`, topic)

	content, err := ChatCompletion(quizSystemPrompt, prompt, 500, 0.6)
	if err != nil {
		return nil, err
	}

	flashcards, err := ParseFlashcards(content)
	if err != nil {
		log.Printf("Error parsing flashcard response: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return flashcards, nil
}

// ParseFlashcards extracts and validates the JSON array from raw AI output.
func ParseFlashcards(content string) ([]Flashcard, error) {
	raw, err := extractJSONArray(content)
	if err != nil {
		return nil, err
	}

	var flashcards []Flashcard
	if err := json.Unmarshal([]byte(raw), &flashcards); err != nil {
		return nil, err
	}
	if len(flashcards) == 0 {
		return nil, fmt.Errorf("empty flashcard set")
	}
	for _, f := range flashcards {
		if f.Term == "" || f.Definition == "" {
			return nil, fmt.Errorf("invalid flashcard structure received from AI")
		}
	}
	return flashcards, nil
}
