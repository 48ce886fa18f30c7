package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const ctxSessionKey = "sessao"

type Options struct {
	Cookie string
	MaxAge time.Duration
	Secure bool
}

// Session é a sessão do cliente da requisição corrente.
type Session struct {
	c     *gin.Context
	store Store
	opts  Options
	token string
	data  Data
}

// Middleware carrega a sessão apontada pelo cookie e a coloca no contexto.
// Falha no store é tratada como sessão não autenticada.
func Middleware(store Store, opts Options) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := &Session{c: c, store: store, opts: opts}

		if token, err := c.Cookie(opts.Cookie); err == nil && token != "" {
			d, ok, err := store.Load(c.Request.Context(), token)
			if err != nil {
				zap.L().Warn("falha ao carregar sessão", zap.Error(err))
			} else if ok {
				s.token = token
				s.data = d
			}
		}

		c.Set(ctxSessionKey, s)
		c.Next()
	}
}

// Default devolve a sessão colocada pelo Middleware. Sem middleware, devolve
// uma sessão vazia que nunca está autenticada.
func Default(c *gin.Context) *Session {
	if v, ok := c.Get(ctxSessionKey); ok {
		if s, ok := v.(*Session); ok {
			return s
		}
	}
	return &Session{c: c}
}

func (s *Session) Autenticado() bool {
	return s.data.Autenticado
}

// Autenticar marca a sessão como autenticada. Sempre emite um token novo.
func (s *Session) Autenticar() error {
	if s.store == nil {
		return errors.New("sessão sem store")
	}
	ctx := s.c.Request.Context()
	if s.token != "" {
		if err := s.store.Delete(ctx, s.token); err != nil {
			return err
		}
	}

	token := uuid.NewString()
	d := Data{Autenticado: true}
	if err := s.store.Save(ctx, token, d, s.opts.MaxAge); err != nil {
		return err
	}
	s.token = token
	s.data = d
	s.setCookie(token, int(s.opts.MaxAge/time.Second))
	return nil
}

// Destruir apaga a sessão no store e expira o cookie.
func (s *Session) Destruir() error {
	var err error
	if s.store != nil && s.token != "" {
		err = s.store.Delete(s.c.Request.Context(), s.token)
	}
	s.token = ""
	s.data = Data{}
	if s.opts.Cookie != "" {
		s.setCookie("", -1)
	}
	return err
}

func (s *Session) setCookie(value string, maxAge int) {
	s.c.SetSameSite(http.SameSiteLaxMode)
	s.c.SetCookie(s.opts.Cookie, value, maxAge, "/", "", s.opts.Secure, true)
}
