package backend

import (
	"sync"
	"time"
)

// DefaultCacheTTL é a janela padrão de reuso de respostas idempotentes.
const DefaultCacheTTL = 5 * time.Minute

type cacheEntry struct {
	value    interface{}
	storedAt time.Time
}

// ResultCache guarda respostas de endpoints idempotentes por uma janela
// curta de tempo. Seguro para uso concorrente.
type ResultCache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewResultCache cria um cache com o TTL informado; ttl <= 0 usa o padrão.
func NewResultCache(ttl time.Duration) *ResultCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &ResultCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get devolve o valor armazenado sob a chave, se ainda dentro do TTL. Uma
// entrada com idade exatamente igual ao TTL já conta como expirada.
// Entradas expiradas são removidas no acesso.
func (c *ResultCache) Get(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.storedAt) >= c.ttl {
		delete(c.entries, key)
		return nil, false
	}
	return entry.value, true
}

// Set armazena o valor sob a chave com o timestamp atual.
func (c *ResultCache) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry{value: value, storedAt: c.now()}
}

// Invalidate remove a entrada exata; o curinga "*" limpa o cache inteiro.
// Invalidação parcial por prefixo não é suportada.
func (c *ResultCache) Invalidate(pattern string) {
	if pattern == "*" {
		c.Clear()
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, pattern)
}

// Clear esvazia o cache.
func (c *ResultCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
}
