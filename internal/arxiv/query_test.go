// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	"testing"

	"github.com/pdiddy/arxiv-mcp/pkg/types"
)

func TestBuildQuery(t *testing.T) {
	tests := []struct {
		name     string
		criteria types.SearchCriteria
		want     string
	}{
		{"free text", types.SearchCriteria{Query: "machine learning"}, "all:machine+learning"},
		{"author", types.SearchCriteria{Author: "Vaswani"}, "au:Vaswani"},
		{"category", types.SearchCriteria{Category: "cs.AI"}, "cat:cs.AI"},
		{
			"all filters",
			types.SearchCriteria{Query: "attention", Author: "Vaswani", Category: "cs.CL"},
			"all:attention+AND+au:Vaswani+AND+cat:cs.CL",
		},
		{"query and category", types.SearchCriteria{Query: "qubits", Category: "quant-ph"}, "all:qubits+AND+cat:quant-ph"},
		{"special characters escaped", types.SearchCriteria{Query: "p=np?"}, "all:p%3Dnp%3F"},
		{"empty", types.SearchCriteria{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildQuery(tt.criteria); got != tt.want {
				t.Errorf("BuildQuery = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClampMaxResults(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want int
	}{
		{"within bound", 10, 10},
		{"at ceiling", 100, 100},
		{"above ceiling", 500, 100},
		{"far above ceiling", 1 << 20, 100},
		{"zero uses default", 0, 10},
		{"negative uses default", -5, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampMaxResults(tt.n, 10); got != tt.want {
				t.Errorf("ClampMaxResults(%d, 10) = %d, want %d", tt.n, got, tt.want)
			}
		})
	}
}
