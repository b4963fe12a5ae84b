package media

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
)

var ErrValidation = errors.New("validation error")

const signedURLTTL = 15 * time.Minute

type Presigner interface {
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
}

// Service turns stored moodboard image references into URLs a client can
// fetch. Absolute URLs pass through; anything else is an object key.
type Service struct {
	signer Presigner
	ttl    time.Duration
	logger *zap.Logger
}

func NewService(signer Presigner, ttl time.Duration, log *zap.Logger) *Service {
	if ttl <= 0 {
		ttl = signedURLTTL
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{signer: signer, ttl: ttl, logger: log}
}

// ResolveURL returns "" when the reference is empty or cannot be signed.
func (s *Service) ResolveURL(ctx context.Context, ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	if isAbsoluteURL(ref) {
		return ref
	}
	if s.signer == nil {
		return ""
	}

	signed, err := s.signer.PresignGet(ctx, strings.TrimPrefix(ref, "/"), s.ttl)
	if err != nil {
		s.logger.Warn("moodboard url presign failed", zap.String("key", ref), zap.Error(err))
		return ""
	}
	return signed
}

// ResolveURLs resolves each reference and drops the ones that fail.
func (s *Service) ResolveURLs(ctx context.Context, refs []string) []string {
	out := make([]string, 0, len(refs))
	for _, ref := range refs {
		if u := s.ResolveURL(ctx, ref); u != "" {
			out = append(out, u)
		}
	}
	return out
}

func isAbsoluteURL(ref string) bool {
	lower := strings.ToLower(ref)
	return strings.HasPrefix(lower, "https://") ||
		strings.HasPrefix(lower, "http://") ||
		strings.HasPrefix(lower, "data:")
}
