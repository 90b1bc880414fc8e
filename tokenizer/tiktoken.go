package tokenizer

import (
	"fmt"
	"os"
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

// OfflineEnv, when set to a non-empty value, tells the tiktoken layer to
// refuse network fetches of BPE data and rely on a populated
// TIKTOKEN_CACHE_DIR instead.
const OfflineEnv = "RAGQA_TOKENIZER_OFFLINE"

// modelEncodings maps model names to their tiktoken encoding.
var modelEncodings = map[string]string{
	"gpt-4o":                 "o200k_base",
	"gpt-4o-mini":            "o200k_base",
	"gpt-4-turbo":            "cl100k_base",
	"gpt-4":                  "cl100k_base",
	"gpt-3.5-turbo":          "cl100k_base",
	"text-embedding-3-large": "cl100k_base",
	"text-embedding-3-small": "cl100k_base",
}

// TiktokenTokenizer wraps tiktoken for OpenAI-family models. The encoding
// data is loaded lazily on first use (which may download it) and cached for
// the life of the process. Concurrent first use is not supported; pre-warm
// with a throwaway CountTokens call before spawning concurrent work.
type TiktokenTokenizer struct {
	model    string
	encoding string
	enc      *tiktoken.Tiktoken
	once     sync.Once
	initErr  error
}

// NewTiktokenTokenizer creates a tiktoken-backed tokenizer for the given
// model. Unknown models fall back to prefix matching, then to cl100k_base.
func NewTiktokenTokenizer(model string) *TiktokenTokenizer {
	encoding, ok := modelEncodings[model]
	if !ok {
		for prefix, e := range modelEncodings {
			if len(model) >= len(prefix) && model[:len(prefix)] == prefix {
				encoding, ok = e, true
				break
			}
		}
	}
	if !ok {
		encoding = "cl100k_base"
	}

	return &TiktokenTokenizer{model: model, encoding: encoding}
}

// init lazily loads the tiktoken encoding. In offline mode the load is
// refused unless TIKTOKEN_CACHE_DIR points at an existing directory, since
// a cold cache would trigger a network fetch.
func (t *TiktokenTokenizer) init() error {
	t.once.Do(func() {
		if os.Getenv(OfflineEnv) != "" {
			cacheDir := os.Getenv("TIKTOKEN_CACHE_DIR")
			if info, err := os.Stat(cacheDir); cacheDir == "" || err != nil || !info.IsDir() {
				t.initErr = fmt.Errorf("offline mode: no tiktoken cache at %q", cacheDir)
				return
			}
		}
		enc, err := tiktoken.GetEncoding(t.encoding)
		if err != nil {
			t.initErr = fmt.Errorf("init tiktoken encoding %s: %w", t.encoding, err)
			return
		}
		t.enc = enc
	})
	return t.initErr
}

func (t *TiktokenTokenizer) CountTokens(text string) (int, error) {
	if err := t.init(); err != nil {
		return 0, err
	}
	// Allow any special tokens the model defines to count as themselves.
	tokens := t.enc.Encode(text, []string{"all"}, nil)
	return len(tokens), nil
}

func (t *TiktokenTokenizer) Name() string {
	return fmt.Sprintf("tiktoken[%s]", t.encoding)
}
