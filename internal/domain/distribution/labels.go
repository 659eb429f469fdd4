package distribution

// Survey field labels read from panel metadata.
const (
	labelLocation        = "location"
	labelCarOwnership    = "차량 보유 여부"
	labelCarBrand        = "차량 브랜드"
	labelCarBrandCompact = "차량브랜드"
	labelPhoneBrand      = "휴대폰 브랜드"
	labelOccupation      = "직업"
	labelPersonalIncome  = "개인 월소득"
	labelHouseholdIncome = "가구 월소득"
)

// Answer values with special meaning.
const (
	sentinelNoAnswer     = "무응답"
	affirmativeOwnership = "있음"
)

// Result caps per dimension. Income is uncapped.
const (
	regionLimit     = 10
	carLimit        = 10
	phoneLimit      = 5
	occupationLimit = 10
)
