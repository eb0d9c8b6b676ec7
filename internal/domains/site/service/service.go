package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	articleservice "lawfirm-backend/internal/domains/article/service"
	faqservice "lawfirm-backend/internal/domains/faq/service"
	legalservice "lawfirm-backend/internal/domains/legalservice/service"
	messageservice "lawfirm-backend/internal/domains/message/service"
	settingservice "lawfirm-backend/internal/domains/setting/service"
	"lawfirm-backend/internal/domains/site/model"
)

const (
	homeArticles  = 3
	recentInbound = 5
)

type ServiceInterface interface {
	Home(ctx context.Context) (*model.HomePage, error)
	About(ctx context.Context) (*model.AboutPage, error)
	Services(ctx context.Context) (*model.ServicesPage, error)
	Contact(ctx context.Context) (*model.ContactPage, error)
	Dashboard(ctx context.Context) (*model.Dashboard, error)
}

// Deps are the content services the pages are assembled from
type Deps struct {
	Articles  articleservice.ServiceInterface
	Services  legalservice.ServiceInterface
	Faqs      faqservice.ServiceInterface
	Settings  settingservice.ServiceInterface
	Contacts  messageservice.ContactService
	Inquiries messageservice.InquiryService
}

type siteService struct {
	deps Deps
}

func NewSiteService(deps Deps) ServiceInterface {
	return &siteService{deps: deps}
}

func (s *siteService) settings(ctx context.Context) (map[string]string, error) {
	values, err := s.deps.Settings.Values(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return values, nil
}

func (s *siteService) Home(ctx context.Context) (*model.HomePage, error) {
	page := &model.HomePage{Testimonials: model.Testimonials()}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		page.Services, err = s.deps.Services.Active(gctx)
		return err
	})
	g.Go(func() (err error) {
		page.Articles, err = s.deps.Articles.Recent(gctx, homeArticles)
		return err
	})
	g.Go(func() (err error) {
		page.Settings, err = s.settings(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return page, nil
}

func (s *siteService) About(ctx context.Context) (*model.AboutPage, error) {
	settings, err := s.settings(ctx)
	if err != nil {
		return nil, err
	}
	return &model.AboutPage{Settings: settings}, nil
}

func (s *siteService) Services(ctx context.Context) (*model.ServicesPage, error) {
	services, err := s.deps.Services.Active(ctx)
	if err != nil {
		return nil, err
	}
	settings, err := s.settings(ctx)
	if err != nil {
		return nil, err
	}
	return &model.ServicesPage{Services: services, Settings: settings}, nil
}

func (s *siteService) Contact(ctx context.Context) (*model.ContactPage, error) {
	faqs, err := s.deps.Faqs.Published(ctx)
	if err != nil {
		return nil, err
	}
	settings, err := s.settings(ctx)
	if err != nil {
		return nil, err
	}
	return &model.ContactPage{Faqs: faqs, Settings: settings}, nil
}

func (s *siteService) Dashboard(ctx context.Context) (*model.Dashboard, error) {
	d := &model.Dashboard{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		stats, err := s.deps.Contacts.Stats(gctx)
		if err != nil {
			return err
		}
		d.Stats.TotalContacts, d.Stats.UnreadContacts = stats.Total, stats.Unread
		return nil
	})
	g.Go(func() error {
		stats, err := s.deps.Inquiries.Stats(gctx)
		if err != nil {
			return err
		}
		d.Stats.TotalInquiries, d.Stats.UnreadInquiries = stats.Total, stats.Unread
		return nil
	})
	g.Go(func() error {
		counts, err := s.deps.Services.Counts(gctx)
		if err != nil {
			return err
		}
		d.Stats.TotalServices, d.Stats.ActiveServices = counts.Total, counts.Active
		return nil
	})
	g.Go(func() error {
		counts, err := s.deps.Faqs.Counts(gctx)
		if err != nil {
			return err
		}
		d.Stats.TotalFaqs, d.Stats.PublishedFaqs = counts.Total, counts.Published
		return nil
	})
	g.Go(func() (err error) {
		d.RecentContacts, err = s.deps.Contacts.Recent(gctx, recentInbound)
		return err
	})
	g.Go(func() (err error) {
		d.RecentInquiries, err = s.deps.Inquiries.Recent(gctx, recentInbound)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load dashboard: %w", err)
	}
	return d, nil
}
