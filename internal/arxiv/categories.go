// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import "encoding/json"

// CategoryGroup is a top-level subject field and its category codes.
type CategoryGroup struct {
	Field      string   `json:"field"`
	Categories []string `json:"categories"`
}

// CategoryGroups returns the static reference listing of arXiv subject
// categories grouped by top-level field. The listing is fixed, not
// derived from any live source.
func CategoryGroups() []CategoryGroup {
	return []CategoryGroup{
		{
			Field: "Computer Science",
			Categories: []string{
				"cs.AI - Artificial Intelligence",
				"cs.CL - Computation and Language",
				"cs.CV - Computer Vision and Pattern Recognition",
				"cs.LG - Machine Learning",
				"cs.NE - Neural and Evolutionary Computing",
				"cs.RO - Robotics",
			},
		},
		{
			Field: "Mathematics",
			Categories: []string{
				"math.AG - Algebraic Geometry",
				"math.GT - Geometric Topology",
				"math.LO - Logic",
				"math.NT - Number Theory",
				"math.ST - Statistics Theory",
			},
		},
		{
			Field: "Physics",
			Categories: []string{
				"physics.comp-ph - Computational Physics",
				"physics.data-an - Data Analysis, Statistics and Probability",
				"quant-ph - Quantum Physics",
			},
		},
		{
			Field: "Statistics",
			Categories: []string{
				"stat.AP - Applications",
				"stat.CO - Computation",
				"stat.ML - Machine Learning",
				"stat.TH - Theory",
			},
		},
	}
}

// CategoriesJSON renders the listing as indented JSON, an object keyed
// by field name: {"Computer Science": [...], ...}.
func CategoriesJSON() (string, error) {
	groups := CategoryGroups()
	byField := make(map[string][]string, len(groups))
	for _, g := range groups {
		byField[g.Field] = g.Categories
	}

	data, err := json.MarshalIndent(byField, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
