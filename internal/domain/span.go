package domain

import (
	"context"
	"encoding/json"
	"time"
)

// Span times one phase of a valuation pass.
type Span struct {
	Name    string `json:"name"`
	startTs time.Time

	Elapsed *int64 `json:"elapsed"`
}

const ContextProfileKey = "performanceProfile"

// GetProfile returns the profile carried in ctx, or nil when the caller
// did not ask for timing.
func GetProfile(ctx context.Context) *Profile {
	profile, ok := ctx.Value(ContextProfileKey).(*Profile)
	if !ok {
		return nil
	}
	return profile
}

// Profile is simply a list of spans
type Profile struct {
	Spans   []*Span `json:"spans"`
	startTs time.Time
	TotalMs *int64 `json:"totalMs"`
}

func (p *Profile) End() {
	t := time.Since(p.startTs).Milliseconds()
	if p.TotalMs == nil {
		p.TotalMs = &t
	}
}

func (s *Span) End() {
	if s.Elapsed == nil {
		t := time.Since(s.startTs).Milliseconds()
		s.Elapsed = &t
	}
}

func NewProfile() (newProfile *Profile, endNewProfile func()) {
	newProfile = &Profile{
		Spans:   []*Span{},
		startTs: time.Now(),
	}

	return newProfile, newProfile.End
}

// StartNewSpan ends the last span and begins a new one
// not thread safe
func (p *Profile) StartNewSpan(name string) (newSpan *Span, endSpan func()) {
	if p == nil {
		return nil, func() {}
	}
	newSpan = &Span{
		Name:    name,
		startTs: time.Now(),
	}
	if len(p.Spans) > 0 {
		p.Spans[len(p.Spans)-1].End()
	}
	p.Spans = append(p.Spans, newSpan)
	return newSpan, newSpan.End
}

func (p *Profile) ToJsonBytes() ([]byte, error) {
	bytes, err := json.Marshal(p.Spans)
	if err != nil {
		return nil, err
	}
	return bytes, nil
}
