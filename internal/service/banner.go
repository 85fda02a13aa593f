package service

import (
	"strings"

	"github.com/hirelab/interview-trainer/internal/dto"
)

// Decision is the closed set of hiring outcomes a recommendation can carry.
type Decision int

const (
	DecisionMaybe Decision = iota
	DecisionHire
	DecisionNoHire
)

// ParseDecision maps the collaborator's decision string onto the closed enum.
// Anything unrecognized is treated as Maybe.
func ParseDecision(s string) Decision {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hire", "strong hire":
		return DecisionHire
	case "don't hire", "dont hire", "no hire", "reject":
		return DecisionNoHire
	default:
		return DecisionMaybe
	}
}

// Banner maps a decision to its display treatment. An explicit switch over
// the enum, one treatment per outcome.
func Banner(d Decision) dto.BannerDTO {
	switch d {
	case DecisionHire:
		return dto.BannerDTO{Decision: "Hire", Label: "Recommended for hire", Color: "green", Icon: "check"}
	case DecisionNoHire:
		return dto.BannerDTO{Decision: "Don't Hire", Label: "Not recommended", Color: "red", Icon: "x"}
	default:
		return dto.BannerDTO{Decision: "Maybe", Label: "Needs further evaluation", Color: "amber", Icon: "question"}
	}
}
