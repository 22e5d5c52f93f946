package assistantnode

import (
	"errors"
	"strings"

	"github.com/cloudwego/eino/schema"
)

var (
	ErrEmptyQuery  = errors.New("query is empty")
	ErrNilState    = errors.New("graph state is nil")
	ErrNoFirstCall = errors.New("first dispatch has not run")
)

func ValidateQuery(in GraphInput, systemPrompt string) (*GraphState, error) {
	query := strings.TrimSpace(in.Query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	return &GraphState{
		Query: query,
		Messages: []*schema.Message{
			schema.SystemMessage(systemPrompt),
			schema.UserMessage(query),
		},
	}, nil
}
