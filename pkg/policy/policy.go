// Package policy decides how trigger events map to image tags and
// whether a finished build may be pushed to the registry.
package policy

import (
	"os"
	"slices"

	"github.com/goccy/go-yaml"
	"github.com/m-mizutani/goerr/v2"
	"github.com/valyala/fasttemplate"

	"github.com/ascensive/stevedore/pkg/domain/model"
	"github.com/ascensive/stevedore/pkg/domain/types"
)

const (
	// DefaultRepository is the image namespace published by this bot
	DefaultRepository = "ascensive/irc-rss-feed-bot"

	// DefaultTag is the tag used for push and pull request builds
	DefaultTag = "latest"

	defaultTagTemplate = "{repository}:{tag}"
)

// PublishPolicy controls tag derivation and the publish decision.
// The zero value is not usable; construct via Default or Load.
type PublishPolicy struct {
	Repository      string   `yaml:"repository"`
	DefaultTag      string   `yaml:"default_tag"`
	PublishBranches []string `yaml:"publish_branches"`
	TagTemplate     string   `yaml:"tag_template"`
}

// Default returns the policy matching the original workflow: publish
// on release and on push to master, build-only otherwise.
func Default() *PublishPolicy {
	p := &PublishPolicy{}
	p.normalize()
	return p
}

// Load reads a YAML policy file. Unset fields fall back to defaults.
func Load(path string) (*PublishPolicy, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read policy file", goerr.V("path", path))
	}

	var p PublishPolicy
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return nil, goerr.Wrap(err, "failed to parse policy file", goerr.V("path", path))
	}

	p.normalize()
	return &p, nil
}

func (p *PublishPolicy) normalize() {
	if p.Repository == "" {
		p.Repository = DefaultRepository
	}
	if p.DefaultTag == "" {
		p.DefaultTag = DefaultTag
	}
	if len(p.PublishBranches) == 0 {
		p.PublishBranches = []string{"master"}
	}
	if p.TagTemplate == "" {
		p.TagTemplate = defaultTagTemplate
	}
}

// ResolveTag derives the image tag for a trigger. It is a pure
// function: identical inputs always yield identical output, and it
// never touches external state.
//
// Release events take their tag from the ref (refs/tags/X -> X); push
// and pull request events use the configured default tag. A ref that
// does not match the prefix convention for its event type fails with
// an invalid_ref_format error before any build happens.
func (p *PublishPolicy) ResolveTag(event model.TriggerEvent, ref model.GitRef) (model.ImageTag, error) {
	switch event {
	case model.EventRelease:
		tag := ref.TagName()
		if tag == "" {
			return "", goerr.New("release ref must start with refs/tags/",
				goerr.V("ref", ref.String()), goerr.T(types.ErrTagInvalidRef))
		}
		return p.render(tag), nil

	case model.EventPush:
		if !ref.IsBranch() {
			return "", goerr.New("push ref must start with refs/heads/",
				goerr.V("ref", ref.String()), goerr.T(types.ErrTagInvalidRef))
		}
		return p.render(p.DefaultTag), nil

	case model.EventPullRequest:
		if !ref.IsBranch() && !ref.IsPull() {
			return "", goerr.New("pull request ref must start with refs/heads/ or refs/pull/",
				goerr.V("ref", ref.String()), goerr.T(types.ErrTagInvalidRef))
		}
		return p.render(p.DefaultTag), nil

	default:
		return "", goerr.New("unknown trigger event",
			goerr.V("event", string(event)), goerr.T(types.ErrTagInvalidRef))
	}
}

// ShouldPublish reports whether a successful build for this trigger
// may be pushed. Pure function: release builds always publish, push
// builds publish only for the configured branches, pull request builds
// never publish.
func (p *PublishPolicy) ShouldPublish(event model.TriggerEvent, ref model.GitRef) bool {
	switch event {
	case model.EventRelease:
		return ref.IsTag()
	case model.EventPush:
		name := ref.BranchName()
		return name != "" && slices.Contains(p.PublishBranches, name)
	default:
		return false
	}
}

func (p *PublishPolicy) render(tag string) model.ImageTag {
	t := fasttemplate.New(p.TagTemplate, "{", "}")
	return model.ImageTag(t.ExecuteString(map[string]interface{}{
		"repository": p.Repository,
		"tag":        tag,
	}))
}
