// Package model holds the domain types shared across the client: waste
// categories with their derived display metadata, classification results,
// dustbin locations, and user types.
package model

// Category is a waste class label as returned by the recognition backends.
type Category string

// The closed set of categories the platform classifies into. Any other label
// a backend returns is treated as CategoryOther.
const (
	CategoryRecyclable Category = "可回收物"
	CategoryHarmful    Category = "有害垃圾"
	CategoryKitchen    Category = "厨余垃圾"
	CategoryOther      Category = "其他垃圾"
)

// DisplayClass is the UI tag derived from a category.
type DisplayClass string

// Display classes for the four categories.
const (
	ClassRecyclable DisplayClass = "recyclable"
	ClassHarmful    DisplayClass = "harmful"
	ClassKitchen    DisplayClass = "kitchen"
	ClassOther      DisplayClass = "other"
)

// DisplayClass maps a category to its UI tag. The lookup is total: unknown
// categories map to ClassOther, never an error.
func (c Category) DisplayClass() DisplayClass {
	switch c {
	case CategoryRecyclable:
		return ClassRecyclable
	case CategoryHarmful:
		return ClassHarmful
	case CategoryKitchen:
		return ClassKitchen
	default:
		return ClassOther
	}
}

// Description returns the disposal instruction for a category. Total, with
// the other-waste instruction as the default arm.
func (c Category) Description() string {
	switch c {
	case CategoryRecyclable:
		return "投放至蓝色可回收物垃圾桶"
	case CategoryHarmful:
		return "投放至红色有害垃圾桶"
	case CategoryKitchen:
		return "投放至绿色厨余垃圾桶"
	default:
		return "投放至灰色其他垃圾桶"
	}
}

// Tips returns the disposal tip for a category. Total, defaulting to the
// other-waste tip.
func (c Category) Tips() string {
	switch c {
	case CategoryRecyclable:
		return "请清洗干净后投放，提高回收利用率"
	case CategoryHarmful:
		return "有害垃圾需单独投放，避免污染环境"
	case CategoryKitchen:
		return "沥干水分后投放，包装物请单独处理"
	default:
		return "无法回收利用的垃圾统一投放至此"
	}
}

// SimilarItem is a suggested item in the same category.
type SimilarItem struct {
	Name  string `json:"name"`
	Match int    `json:"match"`
}

// SimilarItems returns representative items for a known category. Unknown
// categories yield no suggestions.
func (c Category) SimilarItems() []SimilarItem {
	switch c {
	case CategoryRecyclable:
		return []SimilarItem{
			{Name: "塑料瓶", Match: 95},
			{Name: "废纸", Match: 90},
			{Name: "玻璃瓶", Match: 85},
		}
	case CategoryHarmful:
		return []SimilarItem{
			{Name: "废电池", Match: 95},
			{Name: "过期药品", Match: 90},
			{Name: "荧光灯管", Match: 85},
		}
	case CategoryKitchen:
		return []SimilarItem{
			{Name: "果皮", Match: 95},
			{Name: "剩菜", Match: 90},
			{Name: "茶叶渣", Match: 85},
		}
	case CategoryOther:
		return []SimilarItem{
			{Name: "烟蒂", Match: 95},
			{Name: "尘土", Match: 90},
			{Name: "污染纸张", Match: 85},
		}
	default:
		return nil
	}
}
