package geoip_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jcq-estructuras/presupuestos-api/internal/infrastructure/geoip"
)

func TestLookup_IPsPrivadasDevuelvenLocalSinConsultar(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
	}))
	defer srv.Close()

	client := geoip.NewClient(srv.URL)
	for _, ip := range []string{"127.0.0.1", "::1", "192.168.1.20", "10.0.0.5", "", "unknown"} {
		assert.Equal(t, "Local", client.Lookup(context.Background(), ip), "ip %q", ip)
	}
	assert.False(t, called, "las IPs privadas no deben salir a la red")
}

func TestLookup_RespuestaExitosa(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/200.45.1.2", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"success","city":"Córdoba","regionName":"Córdoba","country":"Argentina"}`))
	}))
	defer srv.Close()

	client := geoip.NewClient(srv.URL)
	got := client.Lookup(context.Background(), "200.45.1.2")
	assert.Equal(t, "Córdoba, Córdoba, Argentina", got)
}

func TestLookup_FallosDevuelvenUnknown(t *testing.T) {
	// La API responde pero sin éxito.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"fail","message":"reserved range"}`))
	}))
	defer srv.Close()

	client := geoip.NewClient(srv.URL)
	assert.Equal(t, "Unknown", client.Lookup(context.Background(), "8.8.8.8"))

	// El servidor no responde.
	down := geoip.NewClient("http://127.0.0.1:1")
	assert.Equal(t, "Unknown", down.Lookup(context.Background(), "8.8.8.8"))
}
