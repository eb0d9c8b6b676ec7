package main

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	faqModel "lawfirm-backend/internal/domains/faq/model"
	faqService "lawfirm-backend/internal/domains/faq/service"
	legalModel "lawfirm-backend/internal/domains/legalservice/model"
	legalService "lawfirm-backend/internal/domains/legalservice/service"
	settingModel "lawfirm-backend/internal/domains/setting/model"
	settingService "lawfirm-backend/internal/domains/setting/service"
)

// SeedFile mirrors seeds/settings.yaml
type SeedFile struct {
	Settings []SettingSeed `yaml:"settings"`
	Services []ServiceSeed `yaml:"services"`
	Faqs     []FaqSeed     `yaml:"faqs"`
}

type SettingSeed struct {
	Key         string      `yaml:"key"`
	Value       interface{} `yaml:"value"`
	Type        string      `yaml:"type"`
	Group       string      `yaml:"group"`
	Description string      `yaml:"description"`
}

type ServiceSeed struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Features    []string `yaml:"features"`
	Icon        string   `yaml:"icon"`
	SortOrder   int      `yaml:"sort_order"`
	Inactive    bool     `yaml:"inactive"`
}

type FaqSeed struct {
	Question  string `yaml:"question"`
	Answer    string `yaml:"answer"`
	Category  string `yaml:"category"`
	SortOrder int    `yaml:"sort_order"`
	Draft     bool   `yaml:"draft"`
}

// Decode reads a seed file
func Decode(r io.Reader) (*SeedFile, error) {
	var f SeedFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode seed file: %w", err)
	}
	return &f, nil
}

// Seeder writes a SeedFile through the domain services so the same
// validation and cache invalidation apply as for admin edits.
type Seeder struct {
	Settings settingService.ServiceInterface
	Services legalService.ServiceInterface
	Faqs     faqService.ServiceInterface
}

// Result counts what a run wrote
type Result struct {
	Settings int
	Services int
	Faqs     int
}

func (s *Seeder) Run(ctx context.Context, f *SeedFile) (Result, error) {
	var res Result

	for _, st := range f.Settings {
		t := settingModel.Type(st.Type)
		if t == "" {
			t = settingModel.TypeText
		}
		group := st.Group
		if group == "" {
			group = settingModel.DefaultGroup
		}
		var desc *string
		if st.Description != "" {
			d := st.Description
			desc = &d
		}
		if _, err := s.Settings.Set(ctx, st.Key, st.Value, t, group, desc); err != nil {
			return res, fmt.Errorf("setting %q: %w", st.Key, err)
		}
		res.Settings++
	}

	// services and faqs are only seeded into empty tables
	existing, err := s.Services.List(ctx)
	if err != nil {
		return res, err
	}
	if len(existing) == 0 {
		for _, sv := range f.Services {
			active := !sv.Inactive
			order := sv.SortOrder
			req := legalModel.ServiceRequest{
				Title:       sv.Title,
				Description: sv.Description,
				Features:    sv.Features,
				Icon:        sv.Icon,
				SortOrder:   &order,
				IsActive:    &active,
			}
			if _, err := s.Services.Create(ctx, req, nil); err != nil {
				return res, fmt.Errorf("service %q: %w", sv.Title, err)
			}
			res.Services++
		}
	} else {
		log.Info().Int("existing", len(existing)).Msg("[SEED] services table not empty, skipping")
	}

	faqs, err := s.Faqs.List(ctx)
	if err != nil {
		return res, err
	}
	if len(faqs) == 0 {
		for _, fq := range f.Faqs {
			published := !fq.Draft
			order := fq.SortOrder
			req := faqModel.FaqRequest{
				Question:    fq.Question,
				Answer:      fq.Answer,
				Category:    fq.Category,
				SortOrder:   &order,
				IsPublished: &published,
			}
			if _, err := s.Faqs.Create(ctx, req); err != nil {
				return res, fmt.Errorf("faq %q: %w", fq.Question, err)
			}
			res.Faqs++
		}
	} else {
		log.Info().Int("existing", len(faqs)).Msg("[SEED] faqs table not empty, skipping")
	}

	return res, nil
}
