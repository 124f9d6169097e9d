package views

import "github.com/pearlatelier/pearlsite-go/internal/domain/entities/content"

// Default field maps for the editable pages. A stored non-empty value
// overrides its default on render; everything else keeps these.
var defaultPageContent = map[string]map[string]string{
	"home": {
		"hero_title":       "自然之美，匠心之作",
		"hero_title_en":    "Nature's Beauty, Crafted by Hand",
		"hero_subtitle":    "每一颗珍珠都有自己的故事",
		"hero_subtitle_en": "Every pearl carries its own story",
	},
	"about": {
		"title":         "关于我们",
		"title_en":      "About Us",
		"story":         "从一颗珍珠开始的旅程。",
		"story_en":      "A journey that began with a single pearl.",
		"philosophy":    "自然、克制、长久。",
		"philosophy_en": "Natural, restrained, lasting.",
	},
	"contact": {
		"title":       "联系我们",
		"title_en":    "Contact Us",
		"wechat":      "",
		"xiaohongshu": "",
		"email":       "",
	},
}

// PageFields merges a page's stored fields over its defaults. Unknown
// page keys render from stored fields alone.
func PageFields(pageKey string, stored map[string]string) map[string]string {
	defaults, ok := defaultPageContent[pageKey]
	if !ok {
		defaults = map[string]string{}
	}
	return content.MergeContent(defaults, stored)
}

// LocalizedField resolves a field with its `_en` companion, falling
// back to the native value when the translation is empty.
func LocalizedField(fields map[string]string, key string, english bool) string {
	if english {
		if v := fields[key+"_en"]; v != "" {
			return v
		}
	}
	return fields[key]
}
