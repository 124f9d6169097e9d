package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseContent(t *testing.T) {
	fields := ParseContent(`{"title":"关于","story":"文字"}`)
	assert.Equal(t, "关于", fields["title"])
	assert.Equal(t, "文字", fields["story"])
}

func TestParseContentMalformedYieldsEmptyMap(t *testing.T) {
	assert.Empty(t, ParseContent("not json"))
	assert.Empty(t, ParseContent(""))
	assert.Empty(t, ParseContent(`{"nested":{"x":1}}`))
	assert.NotNil(t, ParseContent("not json"))
}

func TestMergeContent(t *testing.T) {
	defaults := map[string]string{"title": "默认", "subtitle": "副标题"}
	stored := map[string]string{"title": "自定义", "subtitle": "", "extra": "新增"}

	merged := MergeContent(defaults, stored)
	assert.Equal(t, "自定义", merged["title"])
	assert.Equal(t, "副标题", merged["subtitle"], "empty stored value keeps default")
	assert.Equal(t, "新增", merged["extra"])
}
