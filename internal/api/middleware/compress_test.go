package middleware

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type CompressTestSuite struct {
	suite.Suite
	router *chi.Mux
	ts     *httptest.Server
}

func (suite *CompressTestSuite) SetupTest() {
	suite.router = chi.NewRouter()
	suite.ts = httptest.NewServer(suite.router)
}

func (suite *CompressTestSuite) TearDownTest() {
	suite.ts.Close()
}

func TestCompressTestSuite(t *testing.T) {
	suite.Run(t, new(CompressTestSuite))
}

func (suite *CompressTestSuite) TestCompressHandle() {
	suite.router.Use(CompressHandle)
	suite.router.Get("/get", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("textstring"))
	})

	tests := []struct {
		name              string
		expectedEncoding  string
		acceptedEncodings []string
	}{
		{
			name:              "no encoding",
			acceptedEncodings: nil,
			expectedEncoding:  "",
		},
		{
			name:              "gzip encoding",
			acceptedEncodings: []string{"gzip"},
			expectedEncoding:  "gzip",
		},
	}

	// perform each test
	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			client := resty.New()
			res, err := client.R().
				SetDoNotParseResponse(true).
				SetHeader("Accept-Encoding", strings.Join(tt.acceptedEncodings, ",")).
				Get(suite.ts.URL + "/get")
			require.NoError(t, err)
			defer res.RawBody().Close()
			assert.Equal(t, tt.expectedEncoding, res.Header().Get("Content-Encoding"))
			assert.Equal(t, "Accept-Encoding", res.Header().Get("Vary"))

			var body io.Reader = res.RawBody()
			if tt.expectedEncoding == "gzip" {
				gz, err := gzip.NewReader(res.RawBody())
				require.NoError(t, err)
				body = gz
			}
			b, err := io.ReadAll(body)
			require.NoError(t, err)
			assert.Equal(t, "textstring", string(b))
		})
	}
}

func (suite *CompressTestSuite) TestDecompressHandle() {
	suite.router.Use(DecompressHandle)
	suite.router.Post("/post", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		b, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Write(b)
	})

	var compressed bytes.Buffer
	gz := gzip.NewWriter(&compressed)
	_, err := gz.Write([]byte(`{"url":"example.com"}`))
	suite.Require().NoError(err)
	suite.Require().NoError(gz.Close())

	tests := []struct {
		name          string
		queryEncoding string
		payload       []byte
		code          int
		expected      string
	}{
		{
			name:     "plain body",
			payload:  []byte(`{"url":"example.com"}`),
			code:     http.StatusOK,
			expected: `{"url":"example.com"}`,
		},
		{
			name:          "gzip body",
			queryEncoding: "gzip",
			payload:       compressed.Bytes(),
			code:          http.StatusOK,
			expected:      `{"url":"example.com"}`,
		},
		{
			name:          "broken gzip body",
			queryEncoding: "gzip",
			payload:       []byte("not gzip at all"),
			code:          http.StatusBadRequest,
		},
	}

	// perform each test
	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			client := resty.New()
			req := client.R().SetBody(tt.payload)
			if tt.queryEncoding != "" {
				req.SetHeader("Content-Encoding", tt.queryEncoding)
			}
			res, err := req.Post(suite.ts.URL + "/post")
			require.NoError(t, err)
			assert.Equal(t, tt.code, res.StatusCode())
			if tt.expected != "" {
				assert.Equal(t, tt.expected, string(res.Body()))
			}
		})
	}
}
