package service

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/GriffinCanCode/calculator/internal/types"
)

// Registry manages service discovery and tool lookup
type Registry struct {
	services sync.Map
}

// Provider interface for service implementations
type Provider interface {
	Definition() types.Service
}

// Stats summarizes the registry contents
type Stats struct {
	TotalServices int            `json:"total_services" yaml:"total_services"`
	TotalTools    int            `json:"total_tools" yaml:"total_tools"`
	Categories    map[string]int `json:"categories" yaml:"categories"`
}

// NewRegistry creates a new service registry
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a service provider
func (r *Registry) Register(provider Provider) error {
	def := provider.Definition()
	if def.ID == "" {
		return fmt.Errorf("service ID cannot be empty")
	}

	r.services.Store(def.ID, provider)
	return nil
}

// Unregister removes a service provider
func (r *Registry) Unregister(serviceID string) {
	r.services.Delete(serviceID)
}

// Get retrieves a service by ID
func (r *Registry) Get(serviceID string) (Provider, bool) {
	val, ok := r.services.Load(serviceID)
	if !ok {
		return nil, false
	}
	return val.(Provider), true
}

// List returns registered services sorted by ID, optionally filtered by category
func (r *Registry) List(category *types.Category) []types.Service {
	var services []types.Service
	r.services.Range(func(_, value interface{}) bool {
		def := value.(Provider).Definition()
		if category == nil || def.Category == *category {
			services = append(services, def)
		}
		return true
	})

	sort.Slice(services, func(i, j int) bool {
		return services[i].ID < services[j].ID
	})
	return services
}

// Lookup resolves a dispatch tag to the service and tool that handle it
func (r *Registry) Lookup(tag string) (types.Service, types.Tool, bool) {
	for _, svc := range r.List(nil) {
		if tool, ok := svc.FindTool(tag); ok {
			return svc, tool, true
		}
	}
	return types.Service{}, types.Tool{}, false
}

// Discover finds services relevant to a free-text query
func (r *Registry) Discover(query string, limit int) []types.Service {
	type scoredService struct {
		service types.Service
		score   float64
	}

	queryLower := strings.ToLower(query)
	var results []scoredService

	for _, def := range r.List(nil) {
		if score := calculateRelevance(queryLower, def); score > 0 {
			results = append(results, scoredService{service: def, score: score})
		}
	}

	// Sort by score descending; List order breaks ties
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].score > results[j].score
	})

	output := make([]types.Service, 0, limit)
	for i := 0; i < len(results) && i < limit; i++ {
		output = append(output, results[i].service)
	}
	return output
}

// Stats returns registry statistics
func (r *Registry) Stats() Stats {
	stats := Stats{Categories: make(map[string]int)}
	for _, def := range r.List(nil) {
		stats.TotalServices++
		stats.TotalTools += len(def.Tools)
		stats.Categories[string(def.Category)]++
	}
	return stats
}

func calculateRelevance(query string, service types.Service) float64 {
	score := 0.0

	// Service name and ID
	if strings.Contains(query, service.ID) || strings.Contains(query, strings.ToLower(service.Name)) {
		score += 10.0
	}

	// Tool tags and names
	for _, word := range strings.Fields(query) {
		for _, tool := range service.Tools {
			if word == tool.Tag || strings.Contains(strings.ToLower(tool.Name), word) {
				score += 8.0
			}
		}
	}

	// Description words
	for _, word := range strings.Fields(strings.ToLower(service.Description)) {
		word = strings.Trim(word, ",.()")
		if len(word) > 3 && strings.Contains(query, word) {
			score += 5.0
		}
	}

	for _, c := range service.Capabilities {
		if strings.Contains(query, strings.ReplaceAll(strings.ToLower(c), "_", " ")) {
			score += 3.0
		}
	}

	if strings.Contains(query, string(service.Category)) {
		score += 2.0
	}

	return score
}
