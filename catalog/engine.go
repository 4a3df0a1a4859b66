package catalog

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/rohit7nkuamr/westend-Corporation-sub000/models"
)

// AllProducts is the category sentinel that disables category filtering.
const AllProducts = "All Products"

// DefaultPageSize matches the storefront grid.
const DefaultPageSize = 12

// ═══════════════════════════════════════════════════════════
// Sort Orders
// ═══════════════════════════════════════════════════════════

type SortOrder string

const (
	SortFeatured SortOrder = "featured"
	SortNewest   SortOrder = "newest"
	SortNameAsc  SortOrder = "name_asc"
	SortNameDesc SortOrder = "name_desc"
)

// ParseSortOrder maps a query-string value to a sort order, falling back
// to featured for anything unrecognized.
func ParseSortOrder(s string) SortOrder {
	switch SortOrder(s) {
	case SortNewest, SortNameAsc, SortNameDesc:
		return SortOrder(s)
	default:
		return SortFeatured
	}
}

// ═══════════════════════════════════════════════════════════
// Query State
// ═══════════════════════════════════════════════════════════

// Query is the ephemeral filter/sort/page state for one catalog view.
type Query struct {
	Category string
	Search   string
	Sort     SortOrder
	Page     int
	PageSize int
}

func NewQuery() Query {
	return Query{
		Category: AllProducts,
		Sort:     SortFeatured,
		Page:     1,
		PageSize: DefaultPageSize,
	}
}

// SetCategory changes the selected category and resets to page 1, so a
// stale page number is never applied to a newly filtered set.
func (q *Query) SetCategory(category string) {
	q.Category = category
	q.Page = 1
}

// SetSearch changes the search term and resets to page 1.
func (q *Query) SetSearch(term string) {
	q.Search = term
	q.Page = 1
}

// ═══════════════════════════════════════════════════════════
// Pipeline: filter → sort → paginate
// ═══════════════════════════════════════════════════════════

// Filter returns the products matching the selected category and search
// term. The category matches against the product's vertical title, so a
// product with a dangling vertical reference only shows under the
// "All Products" sentinel. The search is a case-insensitive substring
// match on the display name; an empty term matches everything.
func Filter(products []models.Product, category, searchTerm string) []models.Product {
	term := strings.ToLower(searchTerm)
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if category != AllProducts && p.VerticalName != category {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(p.Name), term) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Sort returns a sorted copy of products. All orders are stable, so
// equal elements keep their upstream relative order.
func Sort(products []models.Product, order SortOrder) []models.Product {
	out := make([]models.Product, len(products))
	copy(out, products)

	switch order {
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool {
			a, b := createdAt(out[i]), createdAt(out[j])
			if !a.Equal(b) {
				return a.After(b)
			}
			// Equal or absent timestamps: higher id is newer.
			return out[i].ID > out[j].ID
		})
	case SortNameAsc:
		cl := collate.New(language.English)
		sort.SliceStable(out, func(i, j int) bool {
			return cl.CompareString(out[i].Name, out[j].Name) < 0
		})
	case SortNameDesc:
		cl := collate.New(language.English)
		sort.SliceStable(out, func(i, j int) bool {
			return cl.CompareString(out[i].Name, out[j].Name) > 0
		})
	default: // SortFeatured
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].FeaturedRank() < out[j].FeaturedRank()
		})
	}
	return out
}

// createdAt treats a missing creation timestamp as the zero time, so
// products without one sort after every dated product under "newest".
func createdAt(p models.Product) time.Time {
	if p.CreatedAt == nil {
		return time.Time{}
	}
	return *p.CreatedAt
}

// Paginate returns the 1-based page window. A page past the end of the
// list is an empty slice, not an error.
func Paginate(products []models.Product, page, pageSize int) []models.Product {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	start := (page - 1) * pageSize
	if start >= len(products) {
		return []models.Product{}
	}
	end := start + pageSize
	if end > len(products) {
		end = len(products)
	}
	return products[start:end]
}

// Apply runs the full filter → sort → paginate pipeline and also returns
// the filtered total for pagination metadata.
func Apply(products []models.Product, q Query) (page []models.Product, total int) {
	filtered := Filter(products, q.Category, q.Search)
	sorted := Sort(filtered, q.Sort)
	return Paginate(sorted, q.Page, q.PageSize), len(filtered)
}

// ═══════════════════════════════════════════════════════════
// Category Counts
// ═══════════════════════════════════════════════════════════

// BuildCategoryCounts produces one count entry per vertical plus a
// leading synthetic "All Products" entry equal to the total product
// count. Products referencing an unknown vertical only contribute to
// the total.
func BuildCategoryCounts(products []models.Product, verticals []models.Vertical) []models.CategoryCount {
	perVertical := make(map[int]int, len(verticals))
	for _, p := range products {
		perVertical[p.Vertical]++
	}

	counts := make([]models.CategoryCount, 0, len(verticals)+1)
	counts = append(counts, models.CategoryCount{Title: AllProducts, Count: len(products)})
	for _, v := range verticals {
		counts = append(counts, models.CategoryCount{
			Title:    v.Title,
			IconName: v.IconName,
			Count:    perVertical[v.ID],
		})
	}
	return counts
}
