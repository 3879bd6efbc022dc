package geoip

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Client resuelve la ubicación aproximada de una IP vía ip-api.com.
// Es un canal lateral del audit log: nunca devuelve error, solo un
// valor de respaldo ("Local" para IPs privadas, "Unknown" si falla).
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient construye el cliente con la base de la API (http://ip-api.com/json).
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 3 * time.Second},
	}
}

type lookupResponse struct {
	Status     string `json:"status"`
	City       string `json:"city"`
	RegionName string `json:"regionName"`
	Country    string `json:"country"`
}

// Lookup devuelve "Ciudad, Región, País" para la IP, "Local" para IPs
// privadas o de loopback, y "Unknown" ante cualquier fallo.
func (c *Client) Lookup(ctx context.Context, ip string) string {
	if isPrivate(ip) {
		return "Local"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+ip, nil)
	if err != nil {
		return "Unknown"
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "Unknown"
	}
	defer resp.Body.Close()

	var out lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "Unknown"
	}
	if out.Status != "success" {
		return "Unknown"
	}
	return fmt.Sprintf("%s, %s, %s", out.City, out.RegionName, out.Country)
}

func isPrivate(ip string) bool {
	return ip == "" || ip == "unknown" || ip == "::1" ||
		strings.HasPrefix(ip, "127.") ||
		strings.HasPrefix(ip, "192.168.") ||
		strings.HasPrefix(ip, "10.")
}
