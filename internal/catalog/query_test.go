package catalog

import "testing"

func fixture() []Product {
	return []Product{
		{ID: 1, Name: "Advanced Snail Mucin Essence", Brand: "COSRX", Price: 215000, Reviews: 1240, Category: "Skincare", IsSale: true},
		{ID: 2, Name: "Low pH Good Morning Cleanser", Brand: "COSRX", Price: 55000, Reviews: 850, Category: "Cleanser", IsNew: true},
		{ID: 3, Name: "Matte Lipstick - Dusty Rose", Brand: "MAC", Price: 350000, Reviews: 320, Category: "Makeup"},
		{ID: 4, Name: "Hydrating Water Gel", Brand: "Neutrogena", Price: 180000, Reviews: 2100, Category: "Moisturizer", IsSale: true},
	}
}

func TestSearch_TermCaseInsensitive(t *testing.T) {
	got := Search(fixture(), Query{Term: "cOsRx"})

	if len(got) != 2 {
		t.Fatalf("len=%d want=2", len(got))
	}
	for _, p := range got {
		if p.Brand != "COSRX" {
			t.Fatalf("brand=%s", p.Brand)
		}
	}
}

func TestSearch_TermMatchesCategory(t *testing.T) {
	got := Search(fixture(), Query{Term: "makeup"})

	if len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("got=%v", got)
	}
}

func TestSearch_CategoryExactMembership(t *testing.T) {
	got := Search(fixture(), Query{Categories: []string{"Skincare", "Makeup"}})
	if len(got) != 2 {
		t.Fatalf("len=%d want=2", len(got))
	}

	// category filter is exact, not substring
	got = Search(fixture(), Query{Categories: []string{"Make"}})
	if len(got) != 0 {
		t.Fatalf("len=%d want=0", len(got))
	}
}

func TestSearch_TagFilter(t *testing.T) {
	sale := Search(fixture(), Query{Tag: TagSale})
	if len(sale) != 2 {
		t.Fatalf("sale len=%d want=2", len(sale))
	}

	fresh := Search(fixture(), Query{Tag: TagNew})
	if len(fresh) != 1 || fresh[0].ID != 2 {
		t.Fatalf("new=%v", fresh)
	}
}

func TestSearch_SortPriceDesc(t *testing.T) {
	products := []Product{
		{ID: 1, Price: 100},
		{ID: 2, Price: 300},
		{ID: 3, Price: 200},
	}

	got := Search(products, Query{Sort: SortPriceDesc})

	want := []int64{300, 200, 100}
	for i, p := range got {
		if p.Price != want[i] {
			t.Fatalf("pos %d price=%d want=%d", i, p.Price, want[i])
		}
	}
}

func TestSearch_SortStableOnTies(t *testing.T) {
	products := []Product{
		{ID: 10, Price: 100},
		{ID: 20, Price: 100},
		{ID: 30, Price: 100},
	}

	got := Search(products, Query{Sort: SortPriceAsc})

	for i, want := range []int64{10, 20, 30} {
		if got[i].ID != want {
			t.Fatalf("pos %d id=%d want=%d", i, got[i].ID, want)
		}
	}
}

func TestSearch_DefaultSortPopular(t *testing.T) {
	got := Search(fixture(), Query{})

	if got[0].ID != 4 || got[1].ID != 1 {
		t.Fatalf("order=%v,%v want reviews desc", got[0].ID, got[1].ID)
	}
}

func TestSearch_SortNewest(t *testing.T) {
	got := Search(fixture(), Query{Sort: SortNewest})
	if got[0].ID != 4 || got[len(got)-1].ID != 1 {
		t.Fatalf("newest order wrong: first=%d last=%d", got[0].ID, got[len(got)-1].ID)
	}
}

func TestSearch_FiltersCompose(t *testing.T) {
	got := Search(fixture(), Query{Term: "cosrx", Tag: TagSale, Categories: []string{"Skincare"}})
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("got=%v", got)
	}
}

func TestSuggest_ShortTermReturnsNothing(t *testing.T) {
	if got := Suggest(fixture(), "c"); len(got) != 0 {
		t.Fatalf("len=%d want=0", len(got))
	}
	if got := Suggest(fixture(), ""); len(got) != 0 {
		t.Fatalf("len=%d want=0", len(got))
	}
}

func TestSuggest_SingleMatch(t *testing.T) {
	got := Suggest(fixture(), "lipstick")
	if len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("got=%v", got)
	}
}

func TestSuggest_CapsAtFive(t *testing.T) {
	var products []Product
	for i := int64(1); i <= 8; i++ {
		products = append(products, Product{ID: i, Name: "Glow Serum", Brand: "Acme"})
	}

	got := Suggest(products, "glow")
	if len(got) != 5 {
		t.Fatalf("len=%d want=5", len(got))
	}
	// collection order, not sorted
	if got[0].ID != 1 || got[4].ID != 5 {
		t.Fatalf("order=%d..%d", got[0].ID, got[4].ID)
	}
}

func TestSuggest_IgnoresCategory(t *testing.T) {
	// suggest matches name and brand only
	if got := Suggest(fixture(), "Moisturizer"); len(got) != 0 {
		t.Fatalf("got=%v", got)
	}
}

func TestParseSort(t *testing.T) {
	if s := ParseSort("price_desc"); s != SortPriceDesc {
		t.Fatalf("s=%s", s)
	}
	if s := ParseSort("bogus"); s != SortPopular {
		t.Fatalf("s=%s", s)
	}
	if s := ParseSort(""); s != SortPopular {
		t.Fatalf("s=%s", s)
	}
}

func TestDiscountPercent(t *testing.T) {
	p := Product{Price: 215000, OriginalPrice: 280000}
	if d := p.DiscountPercent(); d != 23 {
		t.Fatalf("discount=%d want=23", d)
	}

	// advisory only: no original price, or one at/below price, means no badge
	if d := (Product{Price: 100}).DiscountPercent(); d != 0 {
		t.Fatalf("discount=%d want=0", d)
	}
	if d := (Product{Price: 100, OriginalPrice: 100}).DiscountPercent(); d != 0 {
		t.Fatalf("discount=%d want=0", d)
	}
}
