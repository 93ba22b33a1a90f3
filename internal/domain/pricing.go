package domain

// Prices цены за человека по категориям
type Prices struct {
	Adult  float64
	Child  float64
	Senior float64
}

// CalculateTotal считает стоимость группы, результат округляется до копеек
func CalculateTotal(counts PartyCounts, prices Prices) float64 {
	total := float64(counts.Adult)*prices.Adult +
		float64(counts.Child)*prices.Child +
		float64(counts.Senior)*prices.Senior
	return RoundMoney(total)
}
