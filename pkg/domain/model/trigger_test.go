package model_test

import (
	"testing"

	"github.com/ascensive/stevedore/pkg/domain/model"
)

func TestParseTriggerEvent(t *testing.T) {
	tests := []struct {
		in   string
		want model.TriggerEvent
	}{
		{"push", model.EventPush},
		{"pull_request", model.EventPullRequest},
		{"release", model.EventRelease},
		{"issues", model.EventUnknown},
		{"", model.EventUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := model.ParseTriggerEvent(tt.in); got != tt.want {
				t.Errorf("ParseTriggerEvent(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestGitRef(t *testing.T) {
	tests := []struct {
		name       string
		ref        model.GitRef
		isBranch   bool
		isTag      bool
		branchName string
		tagName    string
	}{
		{
			name:       "branch ref",
			ref:        "refs/heads/master",
			isBranch:   true,
			branchName: "master",
		},
		{
			name:       "branch ref with slash",
			ref:        "refs/heads/feature/login",
			isBranch:   true,
			branchName: "feature/login",
		},
		{
			name:    "tag ref",
			ref:     "refs/tags/v1.2.3",
			isTag:   true,
			tagName: "v1.2.3",
		},
		{
			name: "pull ref",
			ref:  "refs/pull/42/merge",
		},
		{
			name: "bare name",
			ref:  "master",
		},
		{
			name: "empty",
			ref:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ref.IsBranch(); got != tt.isBranch {
				t.Errorf("IsBranch() = %v, want %v", got, tt.isBranch)
			}
			if got := tt.ref.IsTag(); got != tt.isTag {
				t.Errorf("IsTag() = %v, want %v", got, tt.isTag)
			}
			if got := tt.ref.BranchName(); got != tt.branchName {
				t.Errorf("BranchName() = %q, want %q", got, tt.branchName)
			}
			if got := tt.ref.TagName(); got != tt.tagName {
				t.Errorf("TagName() = %q, want %q", got, tt.tagName)
			}
		})
	}

	if !model.GitRef("refs/pull/42/merge").IsPull() {
		t.Error("IsPull() = false for pull merge ref")
	}
	if model.GitRef("refs/heads/master").IsPull() {
		t.Error("IsPull() = true for branch ref")
	}
}
