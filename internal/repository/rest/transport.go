package rest

import (
	"log"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const (
	// apikeyHeader - имя заголовка с API ключом (контракт PostgREST/Supabase)
	apikeyHeader = "apikey"
	// authorizationHeader - имя заголовка для авторизации
	authorizationHeader = "Authorization"
)

// authTransport прикрепляет к каждому исходящему запросу пару учетных данных:
// API ключ в заголовке "apikey" и секрет в заголовке "Authorization"
// в формате "Bearer <secret>". Пустые учетные данные не являются ошибкой
// на этом уровне — сервер отвергнет такой запрос сам.
type authTransport struct {
	next   http.RoundTripper
	apiKey string
	secret string
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Клонируем запрос: RoundTripper не должен модифицировать оригинал
	cloned := req.Clone(req.Context())
	cloned.Header.Set(apikeyHeader, t.apiKey)
	cloned.Header.Set(authorizationHeader, "Bearer "+t.secret)
	return t.next.RoundTrip(cloned)
}

// loggingTransport логирует все исходящие HTTP запросы с информацией о
// времени выполнения и статусе ответа
type loggingTransport struct {
	next http.RoundTripper
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := t.next.RoundTrip(req)

	duration := time.Since(start)
	if err != nil {
		log.Printf("[REST] %s %s failed: %v (duration: %v)", req.Method, req.URL.Path, err, duration)
		return nil, err
	}
	log.Printf("[REST] %s %s - %d - %v", req.Method, req.URL.Path, resp.StatusCode, duration)

	return resp, nil
}

// rateLimitTransport ограничивает частоту исходящих запросов (rate limiting).
// Запрос ждет разрешения лимитера с учетом контекста запроса.
type rateLimitTransport struct {
	next    http.RoundTripper
	limiter *rate.Limiter
}

// newRateLimitTransport создает транспорт с лимитером
// rps - запросов в секунду, burst - разрешает кратковременные всплески
func newRateLimitTransport(next http.RoundTripper, rps int, burst int) *rateLimitTransport {
	// Значения по умолчанию если не указаны
	if rps <= 0 {
		rps = 10
	}
	if burst <= 0 {
		burst = 5
	}

	return &rateLimitTransport{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

func (t *rateLimitTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}
	return t.next.RoundTrip(req)
}

// newTransport собирает цепочку транспортов: rate limit → логирование → авторизация
func newTransport(apiKey, secret string, rps, burst int) http.RoundTripper {
	var rt http.RoundTripper = http.DefaultTransport
	rt = &authTransport{next: rt, apiKey: apiKey, secret: secret}
	rt = &loggingTransport{next: rt}
	return newRateLimitTransport(rt, rps, burst)
}
