// Package service provides the provider registry behind the tool API.
//
// Providers register under their service ID and are addressed by tool IDs
// of the form "<service>.<tool>", e.g. "gaussian.multiply".
//
// Discovery Algorithm:
//   - Keyword matching in ID, name and description
//   - Capability matching
//   - Category bonus
//   - Score-based ranking
//
// Example Usage:
//
//	registry := service.NewRegistry()
//	provider, err := gaussian.NewProvider(gaussian.DefaultOptions())
//	if err != nil {
//	    return err
//	}
//	registry.Register(provider)
//	services := registry.Discover("propagate uncertainty", 5)
//	result, err := registry.Execute(ctx, "gaussian.add", params, appCtx)
package service
