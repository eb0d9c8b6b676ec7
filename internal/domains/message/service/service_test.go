package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lawfirm-backend/internal/domains/message/model"
	"lawfirm-backend/internal/domains/message/repository"
	"lawfirm-backend/internal/shared/query"
)

// stepClock advances one minute per call so creation order is observable
func stepClock() func() time.Time {
	t := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Minute)
		return t
	}
}

func newContacts() ContactService {
	return NewContactService(repository.NewMemoryContactRepository(), Config{Clock: stepClock()})
}

func newInquiries() InquiryService {
	return NewInquiryService(repository.NewMemoryInquiryRepository(), Config{Clock: stepClock()})
}

func TestContactService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	svc := newContacts()

	c, err := svc.Submit(ctx, model.ContactRequest{
		Name:    "Jane",
		Email:   "jane@x.com",
		Subject: "Query",
		Message: "Hi",
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusUnread, c.Status)
	assert.Nil(t, c.Phone)

	viewed, err := svc.Show(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusRead, viewed.Status)

	again, err := svc.Show(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusRead, again.Status)

	replied, err := svc.Reply(ctx, c.ID, model.ReplyRequest{AdminReply: "Thanks"})
	require.NoError(t, err)
	assert.Equal(t, model.StatusReplied, replied.Status)
	require.NotNil(t, replied.AdminReply)
	assert.Equal(t, "Thanks", *replied.AdminReply)
	assert.NotNil(t, replied.RepliedAt)

	stored, err := svc.Show(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusReplied, stored.Status, "viewing a replied message keeps it replied")
}

func TestContactService_ReplyValidation(t *testing.T) {
	ctx := context.Background()
	svc := newContacts()

	c, err := svc.Submit(ctx, model.ContactRequest{Name: "A", Email: "a@b.co", Subject: "S", Message: "M"})
	require.NoError(t, err)

	_, err = svc.Reply(ctx, c.ID, model.ReplyRequest{AdminReply: "   "})
	var errs validation.Errors
	require.True(t, errors.As(err, &errs))
	assert.Contains(t, errs, "admin_reply")

	_, err = svc.Reply(ctx, c.ID, model.ReplyRequest{AdminReply: strings.Repeat("r", 2001)})
	require.True(t, errors.As(err, &errs))

	unchanged, err := svc.Show(ctx, c.ID)
	require.NoError(t, err)
	assert.Nil(t, unchanged.AdminReply)
}

func TestContactService_SubmitValidation(t *testing.T) {
	_, err := newContacts().Submit(context.Background(), model.ContactRequest{Email: "nope"})

	var errs validation.Errors
	require.True(t, errors.As(err, &errs))
	for _, field := range []string{"name", "email", "subject", "message"} {
		assert.Contains(t, errs, field)
	}
}

func TestContactService_ListFilterAndStats(t *testing.T) {
	ctx := context.Background()
	svc := newContacts()

	var ids []uuid.UUID
	for i, subject := range []string{"Property dispute", "Annulment", "Property sale", "Labor case"} {
		c, err := svc.Submit(ctx, model.ContactRequest{
			Name:    "Client",
			Email:   "client@example.com",
			Subject: subject,
			Message: "message " + string(rune('a'+i)),
		})
		require.NoError(t, err)
		ids = append(ids, c.ID)
	}
	_, err := svc.Show(ctx, ids[0])
	require.NoError(t, err)
	_, err = svc.Reply(ctx, ids[1], model.ReplyRequest{AdminReply: "Done"})
	require.NoError(t, err)

	t.Run("newest first", func(t *testing.T) {
		res, err := svc.List(ctx, query.Filter{}, 1)
		require.NoError(t, err)
		require.Len(t, res.Items.Items, 4)
		assert.Equal(t, "Labor case", res.Items.Items[0].Subject)
		assert.Equal(t, model.Stats{Total: 4, Unread: 2, Read: 1, Replied: 1}, res.Stats)
	})

	t.Run("search is case-insensitive", func(t *testing.T) {
		res, err := svc.List(ctx, query.Filter{Search: "PROPERTY"}, 1)
		require.NoError(t, err)
		assert.Equal(t, 2, res.Items.Total)
		assert.Equal(t, 4, res.Stats.Total, "stats ignore the filter")
	})

	t.Run("status filter", func(t *testing.T) {
		res, err := svc.List(ctx, query.Filter{Status: "unread", Search: "property"}, 1)
		require.NoError(t, err)
		require.Equal(t, 1, res.Items.Total)
		assert.Equal(t, "Property sale", res.Items.Items[0].Subject)
	})

	t.Run("unknown status matches nothing", func(t *testing.T) {
		res, err := svc.List(ctx, query.Filter{Status: "archived"}, 1)
		require.NoError(t, err)
		assert.Equal(t, 0, res.Items.Total)
		assert.Equal(t, 1, res.Items.LastPage)
	})

	t.Run("recent", func(t *testing.T) {
		recent, err := svc.Recent(ctx, 2)
		require.NoError(t, err)
		require.Len(t, recent, 2)
		assert.Equal(t, ids[3], recent[0].ID)
	})
}

func TestContactService_Pagination(t *testing.T) {
	ctx := context.Background()
	svc := newContacts()
	for i := 0; i < 17; i++ {
		_, err := svc.Submit(ctx, model.ContactRequest{Name: "N", Email: "n@x.io", Subject: "S", Message: "M"})
		require.NoError(t, err)
	}

	first, err := svc.List(ctx, query.Filter{}, 1)
	require.NoError(t, err)
	second, err := svc.List(ctx, query.Filter{}, 2)
	require.NoError(t, err)

	assert.Len(t, first.Items.Items, 15)
	assert.Len(t, second.Items.Items, 2)
	assert.Equal(t, 2, second.Items.LastPage)
	assert.Equal(t, 16, second.Items.From)
	assert.Equal(t, 17, second.Items.To)

	beyond, err := svc.List(ctx, query.Filter{}, 9)
	require.NoError(t, err)
	assert.Empty(t, beyond.Items.Items)
	assert.Equal(t, 17, beyond.Items.Total)
}

func TestContactService_DeleteAndNotFound(t *testing.T) {
	ctx := context.Background()
	svc := newContacts()

	c, err := svc.Submit(ctx, model.ContactRequest{Name: "A", Email: "a@b.co", Subject: "S", Message: "M"})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, c.ID))

	_, err = svc.Show(ctx, c.ID)
	var merr *model.MessageError
	require.True(t, errors.As(err, &merr))
	assert.Equal(t, model.ErrCodeContactNotFound, merr.Code)

	err = svc.Delete(ctx, c.ID)
	assert.ErrorIs(t, err, model.ErrContactNotFound)
}

func TestContactService_Export(t *testing.T) {
	ctx := context.Background()
	svc := newContacts()

	phone := "+63 917 000 0000"
	_, err := svc.Submit(ctx, model.ContactRequest{Name: "Jane", Email: "jane@x.com", Phone: phone, Subject: "Lease", Message: "Hi"})
	require.NoError(t, err)
	_, err = svc.Submit(ctx, model.ContactRequest{Name: "John", Email: "john@x.com", Subject: "Estate", Message: "Hello"})
	require.NoError(t, err)

	f, err := svc.Export(ctx, query.Filter{Search: "lease"})
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Contacts")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Name", rows[0][1])
	assert.Equal(t, "Jane", rows[1][1])
	assert.Equal(t, phone, rows[1][3])
	assert.Equal(t, "unread", rows[1][6])
}

func TestInquiryService_Submit(t *testing.T) {
	ctx := context.Background()
	svc := newInquiries()

	i, err := svc.Submit(ctx, model.InquiryRequest{Message: "  Can I book a consult?  "}, "203.0.113.7")
	require.NoError(t, err)
	assert.Nil(t, i.Name)
	assert.Nil(t, i.Email)
	assert.Equal(t, "Can I book a consult?", i.Message)
	require.NotNil(t, i.IPAddress)
	assert.Equal(t, "203.0.113.7", *i.IPAddress)
	assert.Equal(t, model.StatusUnread, i.Status)

	_, err = svc.Submit(ctx, model.InquiryRequest{Email: "bad"}, "")
	var errs validation.Errors
	require.True(t, errors.As(err, &errs))
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "message")

	named := "Ana"
	_, err = svc.Submit(ctx, model.InquiryRequest{Name: named, Email: "ana@example.com", Message: "Hello"}, "")
	require.NoError(t, err)

	res, err := svc.List(ctx, query.Filter{Search: "ana"}, 1)
	require.NoError(t, err)
	require.Equal(t, 1, res.Items.Total)
	assert.Equal(t, named, *res.Items.Items[0].Name)
}

func TestInquiryService_ReplyFromUnread(t *testing.T) {
	ctx := context.Background()
	svc := newInquiries()

	i, err := svc.Submit(ctx, model.InquiryRequest{Message: "Hours?"}, "")
	require.NoError(t, err)

	replied, err := svc.Reply(ctx, i.ID, model.ReplyRequest{AdminReply: "9 to 5"})
	require.NoError(t, err)
	assert.Equal(t, model.StatusReplied, replied.Status)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.Stats{Total: 1, Replied: 1}, *stats)
}
