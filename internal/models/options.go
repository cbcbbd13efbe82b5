package models

import (
	"fmt"
	"strings"
)

// SortOrder values are the `sortby` wire values.
type SortOrder string

const (
	SortByLikes   SortOrder = "like"
	SortByName    SortOrder = "name"
	SortPriceAsc  SortOrder = "priceAsc"
	SortPriceDesc SortOrder = "priceDesc"
)

func (s SortOrder) Valid() bool {
	switch s {
	case SortByLikes, SortByName, SortPriceAsc, SortPriceDesc:
		return true
	}
	return false
}

// Gender values are the `gender` wire values.
type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
	GenderUnisex Gender = "FM"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderUnisex:
		return true
	}
	return false
}

// Category is a product category; the zero value lists every category.
type Category string

const (
	CategoryAll         Category = ""
	CategoryBeauty      Category = "Beauty"
	CategoryShoes       Category = "Shoes"
	CategoryTop         Category = "Top"
	CategoryOuter       Category = "Outer"
	CategoryPants       Category = "Pants"
	CategorySkirt       Category = "Skirt"
	CategoryBag         Category = "Bag"
	CategoryAccessories Category = "Accessories"
	CategoryUnderwear   Category = "Underwear"
	CategorySportswear  Category = "Sportswear"
	CategoryDigital     Category = "Digital"
	CategoryKids        Category = "Kids"
)

var Categories = []Category{
	CategoryBeauty, CategoryShoes, CategoryTop, CategoryOuter, CategoryPants, CategorySkirt,
	CategoryBag, CategoryAccessories, CategoryUnderwear, CategorySportswear, CategoryDigital, CategoryKids,
}

// ParseCategory accepts a category name case-insensitively; "" and "all" mean
// every category.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "all") {
		return CategoryAll, nil
	}
	for _, c := range Categories {
		if strings.EqualFold(string(c), s) {
			return c, nil
		}
	}
	return CategoryAll, fmt.Errorf("unknown category %q", s)
}

// MultiValueSeparator joins gender and brand selections into one query value.
const MultiValueSeparator = ";"

func JoinValues(values []string) string {
	return strings.Join(values, MultiValueSeparator)
}

// SplitValues is the inverse of JoinValues; blank entries are dropped.
func SplitValues(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, MultiValueSeparator)
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
