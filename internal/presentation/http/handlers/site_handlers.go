package handlers

import (
	"html/template"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pearlatelier/pearlsite-go/internal/application/services"
	"github.com/pearlatelier/pearlsite-go/internal/domain/entities/content"
	"github.com/pearlatelier/pearlsite-go/internal/infrastructure/observability/logging"
	"github.com/pearlatelier/pearlsite-go/internal/presentation/http/middleware"
	"github.com/pearlatelier/pearlsite-go/internal/presentation/templates"
	"github.com/pearlatelier/pearlsite-go/internal/presentation/views"
	"github.com/pearlatelier/pearlsite-go/pkg/config"
)

// SiteHandlers renders the server-side public pages
type SiteHandlers struct {
	catalogService *services.CatalogService
	galleryService *services.GalleryService
	pageService    *services.PageService
	contactService *services.ContactService
	logger         *logging.ChanneledLogger
}

// NewSiteHandlers creates the public page handlers
func NewSiteHandlers(catalogService *services.CatalogService, galleryService *services.GalleryService, pageService *services.PageService, contactService *services.ContactService, logger *logging.ChanneledLogger) *SiteHandlers {
	return &SiteHandlers{
		catalogService: catalogService,
		galleryService: galleryService,
		pageService:    pageService,
		contactService: contactService,
		logger:         logger,
	}
}

type baseData struct {
	SiteName    string
	Title       string
	Lang        string
	English     bool
	Path        string
	ShowConsent bool
}

type jewelryCard struct {
	ID        int64
	Name      string
	ImagePath string
	Gradient  template.CSS
}

type detailData struct {
	jewelryCard
	Description     string
	CarouselEnabled bool
	Index           int
	PrevIndex       int
	NextIndex       int
	ImageCount      int
}

type categoryTab struct {
	Key    string
	Label  string
	Active bool
}

var categoryLabels = []struct {
	Key string
	ZH  string
	EN  string
}{
	{"all", "全部", "All"},
	{"earrings", "耳饰", "Earrings"},
	{"necklaces", "项链", "Necklaces"},
	{"rings", "戒指", "Rings"},
	{"bracelets", "手链", "Bracelets"},
	{"brooches", "胸针", "Brooches"},
	{"sets", "套装", "Sets"},
}

func (h *SiteHandlers) base(c *gin.Context, title string) baseData {
	lang := c.Query("lang")
	if lang != "en" {
		lang = "zh"
	}
	return baseData{
		SiteName:    config.SiteName,
		Title:       title,
		Lang:        lang,
		English:     lang == "en",
		Path:        c.Request.URL.RequestURI(),
		ShowConsent: middleware.Consent(c) == "",
	}
}

func cardFor(item *content.Jewelry, position int, english bool) jewelryCard {
	card := jewelryCard{
		ID:       item.ID,
		Name:     item.LocalizedName(english),
		Gradient: template.CSS(views.PlaceholderGradient(position)),
	}
	if len(item.Images) > 0 {
		card.ImagePath = item.Images[0].Path
	}
	return card
}

// GetHome handles GET /
func (h *SiteHandlers) GetHome(c *gin.Context) {
	base := h.base(c, config.SiteName)

	fields, err := h.pageService.Fields("home")
	if err != nil {
		fields = map[string]string{}
	}
	fields = views.PageFields("home", fields)

	featured, err := h.catalogService.ListFeatured(6)
	if err != nil {
		featured = views.FallbackCatalog()[:6]
	}

	cards := make([]jewelryCard, 0, len(featured))
	for i, item := range featured {
		cards = append(cards, cardFor(item, i, base.English))
	}

	data := gin.H{
		"SiteName": base.SiteName, "Title": base.Title, "Lang": base.Lang,
		"English": base.English, "Path": base.Path, "ShowConsent": base.ShowConsent,
		"HeroTitle":    views.LocalizedField(fields, "hero_title", base.English),
		"HeroSubtitle": views.LocalizedField(fields, "hero_subtitle", base.English),
		"Cards":        cards,
	}
	h.render(c, "home", data)
}

// GetGallery handles GET /gallery with category, page, id and img
// query parameters
func (h *SiteHandlers) GetGallery(c *gin.Context) {
	base := h.base(c, "Gallery")

	page := 1
	if n, err := strconv.Atoi(c.Query("page")); err == nil {
		page = n
	}

	view := views.LoadCatalog(h.catalogService, c.Query("category"), page)

	cards := make([]jewelryCard, 0, len(view.PageItems))
	for i, item := range view.PageItems {
		cards = append(cards, cardFor(item, i, base.English))
	}

	tabs := make([]categoryTab, 0, len(categoryLabels))
	for _, cat := range categoryLabels {
		label := cat.ZH
		if base.English {
			label = cat.EN
		}
		tabs = append(tabs, categoryTab{Key: cat.Key, Label: label, Active: cat.Key == view.Category})
	}

	data := gin.H{
		"SiteName": base.SiteName, "Title": base.Title, "Lang": base.Lang,
		"English": base.English, "Path": base.Path, "ShowConsent": base.ShowConsent,
		"Cards":      cards,
		"Categories": tabs,
		"Category":   view.Category,
		"Page":       view.Page,
		"TotalPages": view.TotalPages,
		"Detail":     h.detailFor(c, view, base.English),
	}
	h.render(c, "gallery", data)
}

// detailFor resolves the ?id= detail section with its ?img= carousel
// position, or nil when no item is pinned.
func (h *SiteHandlers) detailFor(c *gin.Context, view *views.CatalogView, english bool) *detailData {
	id, err := strconv.ParseInt(c.Query("id"), 10, 64)
	if err != nil {
		return nil
	}

	var item *content.Jewelry
	for _, candidate := range view.Items {
		if candidate.ID == id {
			item = candidate
			break
		}
	}
	if item == nil {
		return nil
	}

	carousel := views.OpenCarousel(item)
	if raw := c.Query("img"); raw != "" {
		if idx, err := strconv.Atoi(raw); err == nil {
			carousel.SetIndex(idx)
		}
	}

	detail := &detailData{
		jewelryCard: jewelryCard{
			ID:       item.ID,
			Name:     item.LocalizedName(english),
			Gradient: template.CSS(views.PlaceholderGradient(0)),
		},
		Description:     carousel.FrameDescription(english),
		CarouselEnabled: carousel.Enabled(),
		Index:           carousel.Index,
		ImageCount:      len(item.Images),
	}
	if img := carousel.Current(); img != nil {
		detail.ImagePath = img.Path
	}

	next := *carousel
	next.Next()
	detail.NextIndex = next.Index
	prev := *carousel
	prev.Prev()
	detail.PrevIndex = prev.Index
	return detail
}

// GetAbout handles GET /about
func (h *SiteHandlers) GetAbout(c *gin.Context) {
	base := h.base(c, "About")

	fields, err := h.pageService.Fields("about")
	if err != nil {
		fields = map[string]string{}
	}
	fields = views.PageFields("about", fields)

	data := gin.H{
		"SiteName": base.SiteName, "Title": base.Title, "Lang": base.Lang,
		"English": base.English, "Path": base.Path, "ShowConsent": base.ShowConsent,
		"PageTitle":  views.LocalizedField(fields, "title", base.English),
		"Story":      views.LocalizedField(fields, "story", base.English),
		"Philosophy": views.LocalizedField(fields, "philosophy", base.English),
	}
	h.render(c, "about", data)
}

// GetKnowledge handles GET /knowledge
func (h *SiteHandlers) GetKnowledge(c *gin.Context) {
	base := h.base(c, "Pearl Notes")

	images, err := h.galleryService.ListPublic()
	if err != nil {
		h.logger.Content().Error("Failed to load gallery page", "error", err.Error())
		images = nil
	}

	type knowledgeImage struct {
		Path  string
		Alt   string
		Title string
	}
	list := make([]knowledgeImage, 0, len(images))
	for _, img := range images {
		list = append(list, knowledgeImage{
			Path:  img.Path,
			Alt:   img.Alt,
			Title: img.LocalizedTitle(base.English),
		})
	}

	data := gin.H{
		"SiteName": base.SiteName, "Title": base.Title, "Lang": base.Lang,
		"English": base.English, "Path": base.Path, "ShowConsent": base.ShowConsent,
		"Images": list,
	}
	h.render(c, "knowledge", data)
}

// GetContact handles GET /contact; PostContactForm handles the form
// submission on the same path.
func (h *SiteHandlers) GetContact(c *gin.Context) {
	h.renderContact(c, false, "")
}

// PostContactForm handles POST /contact (form-encoded, server-rendered
// response). API clients use POST /api/contact instead.
func (h *SiteHandlers) PostContactForm(c *gin.Context) {
	if !h.contactService.Enabled() {
		h.renderContact(c, false, "unavailable")
		return
	}
	err := h.contactService.Submit(c.PostForm("name"), c.PostForm("email"), c.PostForm("message"))
	if err != nil {
		h.renderContact(c, false, err.Error())
		return
	}
	h.renderContact(c, true, "")
}

func (h *SiteHandlers) renderContact(c *gin.Context, sent bool, formError string) {
	base := h.base(c, "Contact")

	fields, err := h.pageService.Fields("contact")
	if err != nil {
		fields = map[string]string{}
	}
	fields = views.PageFields("contact", fields)

	if formError != "" && !base.English {
		formError = "发送失败,请稍后再试"
	}

	data := gin.H{
		"SiteName": base.SiteName, "Title": base.Title, "Lang": base.Lang,
		"English": base.English, "Path": base.Path, "ShowConsent": base.ShowConsent,
		"PageTitle":   views.LocalizedField(fields, "title", base.English),
		"WeChat":      fields["wechat"],
		"Xiaohongshu": fields["xiaohongshu"],
		"Email":       fields["email"],
		"FormEnabled": h.contactService.Enabled(),
		"Sent":        sent,
		"FormError":   formError,
	}
	h.render(c, "contact", data)
}

// PostConsentForm handles POST /consent from the consent banner and
// redirects back to the page the visitor was on.
func (h *SiteHandlers) PostConsentForm(c *gin.Context) {
	consent := c.PostForm("consent")
	if consent == middleware.ConsentAccept || consent == middleware.ConsentReject {
		middleware.SetConsent(c, consent)
	}

	target := c.PostForm("return")
	if target == "" || target[0] != '/' {
		target = "/"
	}
	c.Redirect(http.StatusSeeOther, target)
}

func (h *SiteHandlers) render(c *gin.Context, name string, data gin.H) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := templates.Render(c.Writer, name, data); err != nil {
		h.logger.HTTP().Error("Template render failed", "template", name, "error", err.Error())
	}
}
