package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/sydlexius/crossref/internal/provider"
	"github.com/sydlexius/crossref/internal/seeder"
)

const usage = `usage:
  crossref [serve]                           run the HTTP server
  crossref resolve <url> [upc]               identify a provider URL
  crossref url <provider> <type> <id> [cc]   build a canonical URL
  crossref version                           print build information`

// runResolve prints the provider, type and ID behind a URL, followed by the
// default seeder links for it.
func runResolve(w io.Writer, reg *provider.Registry, seeders *seeder.Catalog, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("resolve takes a URL and an optional UPC\n%s", usage)
	}
	raw := args[0]
	upc := ""
	if len(args) == 2 {
		upc = args[1]
	}

	info := reg.GetURLInfo(raw)
	if info == nil {
		return fmt.Errorf("no provider recognizes %q", raw)
	}
	fmt.Fprintf(w, "provider\t%s\ntype\t%s\nid\t%s\n", info.Provider, info.Type, info.ID)
	for _, s := range seeders.Defaults(info.Provider) {
		fmt.Fprintf(w, "%s\t%s\n", s.Namespace, s.BuildURL(raw, upc))
	}
	return nil
}

// runURL prints the canonical URL for a provider entity.
func runURL(w io.Writer, reg *provider.Registry, args []string) error {
	if len(args) < 3 || len(args) > 4 {
		return fmt.Errorf("url takes a provider, a type and an id\n%s", usage)
	}
	name := provider.ProviderName(strings.ToLower(args[0]))
	if reg.Get(name) == nil {
		return &provider.ErrUnknownProvider{Provider: name}
	}
	t := provider.URLType(strings.ToLower(args[1]))
	if !provider.ValidURLType(t) {
		return fmt.Errorf("unknown type %q (want artist, album or track)", args[1])
	}
	country := ""
	if len(args) == 4 {
		country = args[3]
	}
	u := reg.CreateURL(name, t, args[2], country)
	if u == "" {
		return fmt.Errorf("%s cannot build a %s URL for %q", name.DisplayName(), t, args[2])
	}
	fmt.Fprintln(w, u)
	return nil
}
