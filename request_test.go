package oauth1

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleTweetRequest struct {
	Status         string `oauth1:"status"`
	IncludeEntities string `oauth1:"include_entities,encoded"`
}

func TestTaggedOrdersFieldsAscending(t *testing.T) {
	assert := assert.New(t)
	req := &sampleTweetRequest{Status: "hi", IncludeEntities: "true"}

	form := ToFormURLEncoded(Tagged(req))
	assert.Equal("include_entities=true&status=hi", form)
}

type optionFieldRequest struct {
	Callback *string `oauth1:"callback,option"`
	Required string  `oauth1:"required"`
}

func TestTaggedOptionFieldOmittedWhenNil(t *testing.T) {
	assert := assert.New(t)
	req := &optionFieldRequest{Required: "x"}
	form := ToFormURLEncoded(Tagged(req))
	assert.Equal("required=x", form)
}

func TestTaggedOptionFieldIncludedWhenSet(t *testing.T) {
	assert := assert.New(t)
	cb := "https://example.com/cb"
	req := &optionFieldRequest{Callback: &cb, Required: "x"}
	form := ToFormURLEncoded(Tagged(req))
	assert.Equal("callback=https%3A%2F%2Fexample.com%2Fcb&required=x", form)
}

type skipFieldRequest struct {
	Internal string `oauth1:"internal,skip"`
	Visible  string `oauth1:"visible"`
}

func TestTaggedSkipFieldNeverSerialized(t *testing.T) {
	assert := assert.New(t)
	req := &skipFieldRequest{Internal: "secret", Visible: "v"}
	form := ToFormURLEncoded(Tagged(req))
	assert.Equal("visible=v", form)
}

type skipIfFieldRequest struct {
	Extended bool   `oauth1:"-"`
	Text     string `oauth1:"text,skip_if=OmitText"`
}

func (r *skipIfFieldRequest) OmitText() bool { return !r.Extended }

func TestTaggedSkipIfCallsMethod(t *testing.T) {
	assert := assert.New(t)

	omitted := &skipIfFieldRequest{Extended: false, Text: "hello"}
	assert.Equal("", ToFormURLEncoded(Tagged(omitted)))

	included := &skipIfFieldRequest{Extended: true, Text: "hello"}
	assert.Equal("text=hello", ToFormURLEncoded(Tagged(included)))
}

type reservedPrefixRequest struct {
	Bad string `oauth1:"oauth_evil"`
}

func TestTaggedRejectsReservedPrefix(t *testing.T) {
	assert := assert.New(t)
	defer func() {
		r := recover()
		assert.NotNil(r)
	}()
	ToFormURLEncoded(Tagged(&reservedPrefixRequest{Bad: "x"}))
}

func TestNewTaggedReturnsErrorInsteadOfPanicking(t *testing.T) {
	assert := assert.New(t)
	req, err := NewTagged(&reservedPrefixRequest{Bad: "x"})
	assert.Nil(req)
	if assert.Error(err) {
		assert.Contains(err.Error(), "reserved")
	}
}

func TestNewTaggedUnknownSkipIfMethod(t *testing.T) {
	type badSkipIf struct {
		Text string `oauth1:"text,skip_if=DoesNotExist"`
	}
	assert := assert.New(t)
	_, err := NewTagged(&badSkipIf{Text: "x"})
	assert.Error(err)
}

func TestTaggedPlanIsCachedAndConcurrentSafe(t *testing.T) {
	assert := assert.New(t)
	req := &sampleTweetRequest{Status: "hi", IncludeEntities: "true"}

	var wg sync.WaitGroup
	results := make([]string, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = ToFormURLEncoded(Tagged(req))
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal("include_entities=true&status=hi", got)
	}
}
