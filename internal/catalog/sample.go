package catalog

import (
	"fmt"

	"dexbar/internal/domain"
)

const imageBase = "https://assets.pokemon.com/assets/cms2/img/pokedex/full/%03d.png"

func entry(id int, name, kana string, cats ...domain.Category) domain.Entity {
	return domain.Entity{
		ID:           id,
		DisplayName:  name,
		PhoneticName: kana,
		Categories:   cats,
		ImageRef:     fmt.Sprintf(imageBase, id),
	}
}

// Sample returns the nine-entry starter catalog
func Sample() *Catalog {
	return New(
		entry(1, "フシギダネ", "ふしぎだね", domain.CategoryGrass, domain.CategoryPoison),
		entry(2, "フシギソウ", "ふしぎそう", domain.CategoryGrass, domain.CategoryPoison),
		entry(3, "フシギバナ", "ふしぎばな", domain.CategoryGrass, domain.CategoryPoison),
		entry(4, "ヒトカゲ", "ひとかげ", domain.CategoryFire),
		entry(5, "リザード", "りざーど", domain.CategoryFire),
		entry(6, "リザードン", "りざーどん", domain.CategoryFire, domain.CategoryFlying),
		entry(7, "ゼニガメ", "ぜにがめ", domain.CategoryWater),
		entry(8, "カメール", "かめーる", domain.CategoryWater),
		entry(9, "カメックス", "かめっくす", domain.CategoryWater),
	)
}
