package demo

import (
	"slices"

	"go.uber.org/zap"

	"lambdastream/internal/collection"
	"lambdastream/internal/logging"
	"lambdastream/internal/records"
)

// ProductSummary holds the aggregates computed over a product list.
type ProductSummary struct {
	// ByCategory lists products per category, categories in first-seen order.
	ByCategory *collection.Grouped[string, records.Product]
	// MostExpensive is the highest-priced product per category. Ties keep
	// the product that appears first.
	MostExpensive *collection.Ordered[string, records.Product]
	// AveragePrice is the mean price over all products, 0 when there are none.
	AveragePrice float64
}

// SummarizeProducts groups products by category and computes the per-group
// maximum and the overall average price. products is not modified.
func SummarizeProducts(products []records.Product) ProductSummary {
	groups := collection.GroupBy(slices.Values(products), records.ProductCategory)
	avg, _ := collection.Average(products, records.ProductPrice)
	return ProductSummary{
		ByCategory:    groups,
		MostExpensive: collection.MaxByGroup(groups, records.ByPrice),
		AveragePrice:  avg,
	}
}

// Products prints the grouping, the most expensive product per category and
// the average price.
func (d *Demo) Products(products []records.Product) (ProductSummary, error) {
	log := logging.For(d.logger, logging.CategoryProducts)
	timer := logging.StartTimer(log, "summarize products")
	sum := SummarizeProducts(products)
	timer.Stop()
	log.Debug("product block",
		zap.Int("records", len(products)),
		zap.Int("categories", sum.ByCategory.Len()))

	d.section("PART C: Stream Operations on Products")

	d.out.Heading("Products Grouped by Category:")
	for category, group := range sum.ByCategory.All() {
		d.out.Line(category + " -> " + records.FormatList(group))
	}

	d.out.Blank()
	d.out.Heading("Most Expensive Product in Each Category:")
	for category, p := range sum.MostExpensive.All() {
		d.out.Line(category + " -> " + p.String())
	}

	d.out.Blank()
	d.out.Line("Average Price of All Products: " + records.FormatReal(sum.AveragePrice))
	return sum, d.out.Err()
}
