package main

import (
	"fmt"

	"github.com/jsb2092/fashion-coordinator-sub000/internal/advisor"
	"github.com/jsb2092/fashion-coordinator-sub000/internal/entitlement"
	"github.com/jsb2092/fashion-coordinator-sub000/internal/llm"
	"github.com/jsb2092/fashion-coordinator-sub000/internal/people"
	"github.com/jsb2092/fashion-coordinator-sub000/internal/quota"
)

// creates the AI pipeline and the services that gate it
func InitializeServices(personRepo *people.Repository) (*Services, error) {
	generator, err := llm.NewTextGeneratorFromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to create text generator: %w", err)
	}

	tracker := quota.NewTracker(personRepo)

	return &Services{
		LLM:     generator,
		Advisor: advisor.New(generator),
		Quota:   tracker,
		Access:  entitlement.NewEvaluator(tracker),
	}, nil
}
