package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	articlemodel "lawfirm-backend/internal/domains/article/model"
	articlerepo "lawfirm-backend/internal/domains/article/repository"
	articleservice "lawfirm-backend/internal/domains/article/service"
	faqmodel "lawfirm-backend/internal/domains/faq/model"
	faqrepo "lawfirm-backend/internal/domains/faq/repository"
	faqservice "lawfirm-backend/internal/domains/faq/service"
	servicemodel "lawfirm-backend/internal/domains/legalservice/model"
	servicerepo "lawfirm-backend/internal/domains/legalservice/repository"
	legalservice "lawfirm-backend/internal/domains/legalservice/service"
	messagemodel "lawfirm-backend/internal/domains/message/model"
	messagerepo "lawfirm-backend/internal/domains/message/repository"
	messageservice "lawfirm-backend/internal/domains/message/service"
	settingmodel "lawfirm-backend/internal/domains/setting/model"
	settingrepo "lawfirm-backend/internal/domains/setting/repository"
	settingservice "lawfirm-backend/internal/domains/setting/service"
	"lawfirm-backend/internal/infrastructure/storage"
	"lawfirm-backend/pkg/cache"
)

type nullBlobs struct{}

func (nullBlobs) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	return key, nil
}
func (nullBlobs) Delete(ctx context.Context, key string) error { return nil }
func (nullBlobs) URL(key string) string                        { return key }

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func newDeps() Deps {
	images := storage.NewImages(nullBlobs{}, storage.NewImageProcessor(0), nil)
	return Deps{
		Articles:  articleservice.NewArticleService(articlerepo.NewMemoryRepository(), images, cache.NewMemory(), articleservice.Config{CacheTTL: time.Minute}),
		Services:  legalservice.NewLegalService(servicerepo.NewMemoryRepository(), images),
		Faqs:      faqservice.NewFaqService(faqrepo.NewMemoryRepository()),
		Settings:  settingservice.NewSettingService(settingrepo.NewMemoryRepository(), cache.NewMemory(), time.Minute),
		Contacts:  messageservice.NewContactService(messagerepo.NewMemoryContactRepository(), messageservice.Config{}),
		Inquiries: messageservice.NewInquiryService(messagerepo.NewMemoryInquiryRepository(), messageservice.Config{}),
	}
}

func TestSiteService_Home(t *testing.T) {
	ctx := context.Background()
	deps := newDeps()
	svc := NewSiteService(deps)

	for i, title := range []string{"One", "Two", "Three", "Four"} {
		_, err := deps.Articles.Create(ctx, articlemodel.ArticleRequest{
			Title:    title,
			Content:  "<p>Body</p>",
			Category: "news",
			Status:   articlemodel.StatusPublished,
		}, nil)
		require.NoError(t, err, "article %d", i)
	}
	_, err := deps.Articles.Create(ctx, articlemodel.ArticleRequest{
		Title: "Draft", Content: "x", Category: "news", Status: articlemodel.StatusDraft,
	}, nil)
	require.NoError(t, err)

	_, err = deps.Services.Create(ctx, servicemodel.ServiceRequest{
		Title: "Litigation", Description: "d", Features: []string{"Trial"}, Icon: "gavel", SortOrder: intPtr(0),
	}, nil)
	require.NoError(t, err)
	_, err = deps.Services.Create(ctx, servicemodel.ServiceRequest{
		Title: "Retired", Description: "d", Features: []string{"x"}, Icon: "x", SortOrder: intPtr(1), IsActive: boolPtr(false),
	}, nil)
	require.NoError(t, err)

	_, err = deps.Settings.Set(ctx, "site_name", "BelgicaLaw", settingmodel.TypeText, "general", nil)
	require.NoError(t, err)

	page, err := svc.Home(ctx)
	require.NoError(t, err)
	assert.Len(t, page.Articles, 3)
	for _, a := range page.Articles {
		assert.NotEqual(t, "Draft", a.Title)
	}
	require.Len(t, page.Services, 1)
	assert.Equal(t, "Litigation", page.Services[0].Title)
	assert.Len(t, page.Testimonials, 3)
	assert.Equal(t, "BelgicaLaw", page.Settings["site_name"])
}

func TestSiteService_ContactPageShowsPublishedFaqs(t *testing.T) {
	ctx := context.Background()
	deps := newDeps()
	svc := NewSiteService(deps)

	_, err := deps.Faqs.Create(ctx, faqmodel.FaqRequest{Question: "Q1?", Answer: "A", Category: "General", SortOrder: intPtr(0)})
	require.NoError(t, err)
	_, err = deps.Faqs.Create(ctx, faqmodel.FaqRequest{Question: "Q2?", Answer: "A", Category: "General", SortOrder: intPtr(1), IsPublished: boolPtr(false)})
	require.NoError(t, err)

	page, err := svc.Contact(ctx)
	require.NoError(t, err)
	require.Len(t, page.Faqs, 1)
	assert.Equal(t, "Q1?", page.Faqs[0].Question)
	assert.NotNil(t, page.Settings)
}

func TestSiteService_Dashboard(t *testing.T) {
	ctx := context.Background()
	deps := newDeps()
	svc := NewSiteService(deps)

	var first *messagemodel.Contact
	for i := 0; i < 6; i++ {
		c, err := deps.Contacts.Submit(ctx, messagemodel.ContactRequest{Name: "N", Email: "n@x.io", Subject: "S", Message: "M"})
		require.NoError(t, err)
		if first == nil {
			first = c
		}
	}
	_, err := deps.Contacts.Show(ctx, first.ID)
	require.NoError(t, err)

	_, err = deps.Inquiries.Submit(ctx, messagemodel.InquiryRequest{Message: "Hello"}, "")
	require.NoError(t, err)

	_, err = deps.Faqs.Create(ctx, faqmodel.FaqRequest{Question: "Q?", Answer: "A", Category: "General", SortOrder: intPtr(0)})
	require.NoError(t, err)
	_, err = deps.Services.Create(ctx, servicemodel.ServiceRequest{
		Title: "Tax", Description: "d", Features: []string{"Audit"}, Icon: "calc", SortOrder: intPtr(0), IsActive: boolPtr(false),
	}, nil)
	require.NoError(t, err)

	d, err := svc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, d.Stats.TotalContacts)
	assert.Equal(t, 5, d.Stats.UnreadContacts)
	assert.Equal(t, 1, d.Stats.TotalInquiries)
	assert.Equal(t, 1, d.Stats.UnreadInquiries)
	assert.Equal(t, 1, d.Stats.TotalServices)
	assert.Equal(t, 0, d.Stats.ActiveServices)
	assert.Equal(t, 1, d.Stats.TotalFaqs)
	assert.Equal(t, 1, d.Stats.PublishedFaqs)
	assert.Len(t, d.RecentContacts, 5)
	assert.Len(t, d.RecentInquiries, 1)
}
