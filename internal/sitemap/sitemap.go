// Package sitemap builds the sitemaps.org document for the public pages.
package sitemap

import (
	"encoding/xml"
	"io"
	"strconv"
	"strings"
	"time"

	"DIYCalc/internal/catalog"
)

const Namespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

type ChangeFreq string

const (
	Always  ChangeFreq = "always"
	Hourly  ChangeFreq = "hourly"
	Daily   ChangeFreq = "daily"
	Weekly  ChangeFreq = "weekly"
	Monthly ChangeFreq = "monthly"
	Yearly  ChangeFreq = "yearly"
	Never   ChangeFreq = "never"
)

type Entry struct {
	URL             string
	LastModified    time.Time
	ChangeFrequency ChangeFreq
	Priority        float64
}

// Generate lists the home page, the two index pages, every category page and
// every calculator page, in that order.
func Generate(baseURL string, cat *catalog.Catalog, now time.Time) []Entry {
	base := strings.TrimRight(baseURL, "/")
	entries := []Entry{
		{URL: base, LastModified: now, ChangeFrequency: Weekly, Priority: 1.0},
		{URL: base + "/categories", LastModified: now, ChangeFrequency: Monthly, Priority: 0.8},
		{URL: base + "/calculators", LastModified: now, ChangeFrequency: Weekly, Priority: 0.9},
	}
	for _, c := range cat.Categories {
		entries = append(entries, Entry{
			URL:             base + catalog.CategoryURL(c.Name),
			LastModified:    now,
			ChangeFrequency: Monthly,
			Priority:        0.7,
		})
	}
	for _, c := range cat.Calculators {
		entries = append(entries, Entry{
			URL:             base + catalog.CalculatorURL(c.Category, c.Name),
			LastModified:    now,
			ChangeFrequency: Monthly,
			Priority:        0.6,
		})
	}
	return entries
}

type urlset struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []urlXML `xml:"url"`
}

type urlXML struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

func WriteXML(w io.Writer, entries []Entry) error {
	set := urlset{Xmlns: Namespace, URLs: make([]urlXML, 0, len(entries))}
	for _, e := range entries {
		set.URLs = append(set.URLs, urlXML{
			Loc:        e.URL,
			LastMod:    e.LastModified.UTC().Format(time.RFC3339),
			ChangeFreq: string(e.ChangeFrequency),
			Priority:   strconv.FormatFloat(e.Priority, 'f', 1, 64),
		})
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
