package engine

import (
	"strconv"
	"strings"

	"github.com/assuranceops/verdict/internal/catalog"
)

// neutralScale is returned for absent or unrecognized answers. Scoring fails
// open: a garbled answer degrades to neutral instead of aborting the run.
const neutralScale = 3.0

// MapAnswer converts a raw answer into the canonical 1–5 severity scale.
// Raw values arrive from JSON, so strings, bools, and float64 are the
// expected shapes; anything else maps to neutral. Pure, never errors.
func MapAnswer(t catalog.AnswerType, raw any) float64 {
	switch t {
	case catalog.AnswerYesNo:
		return mapYesNo(raw)
	case catalog.AnswerLowMedHigh:
		return mapLowMedHigh(raw)
	case catalog.AnswerScale1To5:
		return mapScale(raw)
	}
	return neutralScale
}

func mapYesNo(raw any) float64 {
	switch v := raw.(type) {
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "yes", "y", "true", "1":
			return 1.0
		case "no", "n", "false", "0":
			return 5.0
		}
	case bool:
		if v {
			return 1.0
		}
		return 5.0
	case float64:
		if v >= 1.0 {
			return 1.0
		}
		return 5.0
	case int:
		if v >= 1 {
			return 1.0
		}
		return 5.0
	}
	return neutralScale
}

func mapLowMedHigh(raw any) float64 {
	switch v := raw.(type) {
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "low", "l":
			return 1.0
		case "medium", "med", "m":
			return 3.0
		case "high", "h":
			return 5.0
		}
	case float64:
		return bucketLowMedHigh(v)
	case int:
		return bucketLowMedHigh(float64(v))
	}
	return neutralScale
}

func bucketLowMedHigh(x float64) float64 {
	switch {
	case x <= 1.67:
		return 1.0
	case x <= 3.34:
		return 3.0
	default:
		return 5.0
	}
}

func mapScale(raw any) float64 {
	switch v := raw.(type) {
	case float64:
		return clampScale(v)
	case int:
		return clampScale(float64(v))
	case string:
		x, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return neutralScale
		}
		return clampScale(x)
	}
	return neutralScale
}

func clampScale(x float64) float64 {
	if x < 1.0 {
		return 1.0
	}
	if x > 5.0 {
		return 5.0
	}
	return x
}
