package catalog

import (
	"sort"
	"strings"
)

type SortOrder string

const (
	SortPopular   SortOrder = "popular"
	SortNewest    SortOrder = "newest"
	SortPriceAsc  SortOrder = "price_asc"
	SortPriceDesc SortOrder = "price_desc"
)

func ParseSort(s string) SortOrder {
	switch SortOrder(s) {
	case SortNewest, SortPriceAsc, SortPriceDesc:
		return SortOrder(s)
	default:
		return SortPopular
	}
}

type Tag string

const (
	TagNone Tag = ""
	TagSale Tag = "sale"
	TagNew  Tag = "new"
)

type Query struct {
	Term       string
	Categories []string
	Tag        Tag
	Sort       SortOrder
}

// Search runs the shop pipeline: tag filter, then text, then category, then
// a stable sort. Ties keep collection order.
func Search(products []Product, q Query) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if matchTag(p, q.Tag) && matchTerm(p, q.Term) && matchCategory(p, q.Categories) {
			out = append(out, p)
		}
	}

	switch q.Sort {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	default: // popular
		sort.SliceStable(out, func(i, j int) bool { return out[i].Reviews > out[j].Reviews })
	}

	return out
}

const (
	suggestMinTerm = 2
	suggestMax     = 5
)

// Suggest returns quick matches for the search-as-you-type dropdown: up to
// five products whose name or brand contains the term, in collection order.
// Terms under two characters produce nothing.
func Suggest(products []Product, term string) []Product {
	if len(term) < suggestMinTerm {
		return nil
	}

	t := strings.ToLower(term)
	var out []Product
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), t) || strings.Contains(strings.ToLower(p.Brand), t) {
			out = append(out, p)
			if len(out) == suggestMax {
				break
			}
		}
	}
	return out
}

func matchTag(p Product, tag Tag) bool {
	switch tag {
	case TagSale:
		return p.IsSale
	case TagNew:
		return p.IsNew
	default:
		return true
	}
}

func matchTerm(p Product, term string) bool {
	if term == "" {
		return true
	}
	t := strings.ToLower(term)
	return strings.Contains(strings.ToLower(p.Name), t) ||
		strings.Contains(strings.ToLower(p.Brand), t) ||
		strings.Contains(strings.ToLower(p.Category), t)
}

func matchCategory(p Product, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, c := range selected {
		if p.Category == c {
			return true
		}
	}
	return false
}
