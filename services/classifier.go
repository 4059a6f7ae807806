package services

import (
	"strings"
)

// Classification is the result of the image categorization stub.
type Classification struct {
	Category   string
	Confidence float64
	Labels     []string
}

// ClassifyImage guesses a civic-issue category from keywords in the
// uploaded filename. It stands in for a real vision model; callers
// treat a false return as "no classification" and carry on.
func ClassifyImage(filename string) (Classification, bool) {
	name := strings.ToLower(filename)
	if name == "" {
		return Classification{}, false
	}

	type rule struct {
		keywords   []string
		category   string
		confidence float64
	}
	rules := []rule{
		{[]string{"flood"}, "flood", 0.92},
		{[]string{"road", "pothole"}, "road_damage", 0.88},
		{[]string{"light"}, "streetlight", 0.90},
	}

	for _, r := range rules {
		var labels []string
		for _, kw := range r.keywords {
			if strings.Contains(name, kw) {
				labels = append(labels, kw)
			}
		}
		if len(labels) > 0 {
			return Classification{Category: r.category, Confidence: r.confidence, Labels: labels}, true
		}
	}

	return Classification{Category: "other", Confidence: 0.60}, true
}
