package site

import (
	"html/template"

	"github.com/nikogura/brand-weaver/pkg/design"
	"github.com/pkg/errors"
	"golang.org/x/text/language"
)

// Phrase is a user-facing string in both supported languages.
type Phrase struct {
	En string
	Ar string
}

// Phrases is the dictionary of every user-facing string the site renders,
// keyed by semantic token.
//
//nolint:gochecknoglobals // read-only dictionary
var Phrases = map[string]Phrase{
	"about":             {En: "About Me", Ar: "نبذة عني"},
	"experience":        {En: "Experience", Ar: "الخبرة العملية"},
	"education":         {En: "Education", Ar: "التعليم"},
	"skills":            {En: "Skills", Ar: "المهارات"},
	"languages":         {En: "Languages", Ar: "اللغات"},
	"certifications":    {En: "Certifications", Ar: "الشهادات"},
	"featuredPosts":     {En: "Featured Posts", Ar: "المنشورات المميزة"},
	"recommendations":   {En: "Recommendations", Ar: "التوصيات"},
	"portfolio":         {En: "Portfolio", Ar: "معرض الأعمال"},
	"present":           {En: "Present", Ar: "حتى الآن"},
	"in":                {En: "in", Ar: "في"},
	"issuedBy":          {En: "Issued by", Ar: "صادرة من"},
	"viewCredential":    {En: "View Credential", Ar: "عرض الشهادة"},
	"viewPost":          {En: "View Post", Ar: "عرض المنشور"},
	"viewOnLinkedIn":    {En: "View on LinkedIn", Ar: "عرض على لينكد إن"},
	"viewProject":       {En: "View Project", Ar: "عرض المشروع"},
	"viewCode":          {En: "View Code", Ar: "عرض الكود"},
	"featured":          {En: "Featured", Ar: "مميز"},
	"connections":       {En: "Connections", Ar: "الاتصالات"},
	"endorsements":      {En: "endorsements", Ar: "تأييدات"},
	"personalPortfolio": {En: "Personal Portfolio", Ar: "الملف الشخصي"},
	"cookieConsent":     {En: "This website uses cookies for analytics.", Ar: "يستخدم هذا الموقع ملفات تعريف الارتباط للتحليلات."},
	"accept":            {En: "Accept", Ar: "قبول"},
	"decline":           {En: "Decline", Ar: "رفض"},
	"allRightsReserved": {En: "All Rights Reserved", Ar: "جميع الحقوق محفوظة"},
	"whatsApp":          {En: "WhatsApp", Ar: "واتساب"},
	"callMe":            {En: "Call Me", Ar: "اتصل بي"},
	"contactOptions":    {En: "Contact options", Ar: "خيارات التواصل"},
}

// localizer renders phrases for one design language. Templates call T for
// element content and Attr for attribute values.
type localizer struct {
	lang design.Language
}

func newLocalizer(lang design.Language) (l *localizer) {
	l = &localizer{lang: lang}
	return l
}

// T renders a phrase as markup. Bilingual sites get both variants in
// lang-tagged spans whose visibility is driven by the stylesheet.
func (l *localizer) T(key string) (out template.HTML, err error) {
	phrase, ok := Phrases[key]
	if !ok {
		err = errors.Errorf("unknown phrase: %s", key)
		return out, err
	}

	switch l.lang {
	case design.Both:
		out = template.HTML(`<span class="lang-en">` + template.HTMLEscapeString(phrase.En) +
			`</span><span class="lang-ar">` + template.HTMLEscapeString(phrase.Ar) + `</span>`) //nolint:gosec // dictionary values are escaped
	case design.Arabic:
		out = template.HTML(template.HTMLEscapeString(phrase.Ar)) //nolint:gosec // escaped
	default:
		out = template.HTML(template.HTMLEscapeString(phrase.En)) //nolint:gosec // escaped
	}

	return out, err
}

// Attr renders a phrase as plain text for attribute values, where markup is
// not allowed. Bilingual sites get "english / arabic".
func (l *localizer) Attr(key string) (out string, err error) {
	phrase, ok := Phrases[key]
	if !ok {
		err = errors.Errorf("unknown phrase: %s", key)
		return out, err
	}

	switch l.lang {
	case design.Both:
		out = phrase.En + " / " + phrase.Ar
	case design.Arabic:
		out = phrase.Ar
	default:
		out = phrase.En
	}

	return out, err
}

// Tag returns the BCP 47 tag the document is initially rendered in.
func (l *localizer) Tag() (tag language.Tag) {
	tag = language.English
	if l.lang == design.Arabic {
		tag = language.Arabic
	}
	return tag
}

// Dir returns the initial text direction.
func (l *localizer) Dir() (dir string) {
	dir = "ltr"
	if l.lang == design.Arabic {
		dir = "rtl"
	}
	return dir
}
