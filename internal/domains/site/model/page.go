package model

import (
	articlemodel "lawfirm-backend/internal/domains/article/model"
	faqmodel "lawfirm-backend/internal/domains/faq/model"
	servicemodel "lawfirm-backend/internal/domains/legalservice/model"
	messagemodel "lawfirm-backend/internal/domains/message/model"
)

type Testimonial struct {
	Name    string `json:"name"`
	Role    string `json:"role"`
	Content string `json:"content"`
	Rating  int    `json:"rating"`
}

// Testimonials are fixed copy until they get their own table
func Testimonials() []Testimonial {
	return []Testimonial{
		{
			Name:    "Maria Santos",
			Role:    "Business Owner",
			Content: "BelgicaLaw provided excellent legal guidance for my business incorporation. Professional and reliable service.",
			Rating:  5,
		},
		{
			Name:    "Juan Dela Cruz",
			Role:    "Property Investor",
			Content: "Their expertise in real estate law helped me navigate complex property transactions with confidence.",
			Rating:  5,
		},
		{
			Name:    "Ana Rodriguez",
			Role:    "Family Client",
			Content: "Compassionate and thorough legal support during a difficult family matter. Highly recommended.",
			Rating:  5,
		},
	}
}

type HomePage struct {
	Services     []servicemodel.ServiceResponse `json:"services"`
	Articles     []articlemodel.ArticleResponse `json:"articles"`
	Testimonials []Testimonial                  `json:"testimonials"`
	Settings     map[string]string              `json:"settings"`
}

type AboutPage struct {
	Settings map[string]string `json:"settings"`
}

type ServicesPage struct {
	Services []servicemodel.ServiceResponse `json:"services"`
	Settings map[string]string              `json:"settings"`
}

type ContactPage struct {
	Faqs     []*faqmodel.Faq   `json:"faqs"`
	Settings map[string]string `json:"settings"`
}

type DashboardStats struct {
	TotalContacts   int `json:"total_contacts"`
	UnreadContacts  int `json:"unread_contacts"`
	TotalInquiries  int `json:"total_inquiries"`
	UnreadInquiries int `json:"unread_inquiries"`
	TotalServices   int `json:"total_services"`
	ActiveServices  int `json:"active_services"`
	TotalFaqs       int `json:"total_faqs"`
	PublishedFaqs   int `json:"published_faqs"`
}

type Dashboard struct {
	Stats           DashboardStats          `json:"stats"`
	RecentContacts  []*messagemodel.Contact `json:"recent_contacts"`
	RecentInquiries []*messagemodel.Inquiry `json:"recent_inquiries"`
}
