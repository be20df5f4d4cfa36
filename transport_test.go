package oauth1

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransportSignsRequestsAndDelegates(t *testing.T) {
	assert := assert.New(t)

	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := testConfig()
	client := cfg.Client(NewToken(twitterAK, twitterAS))

	resp, err := client.Get(srv.URL + "/resource")
	assert.NoError(err)
	defer resp.Body.Close()

	assert.True(strings.HasPrefix(gotAuth, "OAuth "))
	assert.Contains(gotAuth, "oauth_token=\""+twitterAK+"\"")
}

func TestTransportDoesNotMutateCallersHeaders(t *testing.T) {
	assert := assert.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := testConfig()
	transport := &Transport{signer: &Signer{config: cfg}, source: StaticTokenSource(NewToken(twitterAK, twitterAS))}

	req, err := http.NewRequest("GET", srv.URL, nil)
	assert.NoError(err)
	req.Header.Set("X-Test", "1")

	resp, err := transport.RoundTrip(req)
	assert.NoError(err)
	defer resp.Body.Close()

	assert.Empty(req.Header.Get("Authorization"))
}
