package seed

import "estate-portal/internal/models"

// Entry is one demo listing in the seed catalog.
type Entry struct {
	TitleEN       string
	TitleAR       string
	DescriptionEN string
	DescriptionAR string
	LocationEN    string
	LocationAR    string
	Price         float64
	PropertyType  models.PropertyType
	SaleType      models.SaleType
	Phone         string
}

// Catalog is the bilingual demo listing set covering every property
// and sale type across Egyptian locations.
var Catalog = []Entry{
	{
		TitleEN:       "Luxury Villa in New Cairo",
		TitleAR:       "فيلا فاخرة في القاهرة الجديدة",
		DescriptionEN: "A beautiful 4-bedroom villa with swimming pool and garden. Modern design with all amenities.",
		DescriptionAR: "فيلا جميلة بأربعة غرف نوم مع حمام سباحة وحديقة. تصميم عصري مع جميع المرافق.",
		LocationEN:    "New Cairo",
		LocationAR:    "القاهرة الجديدة",
		Price:         8500000,
		PropertyType:  models.PropertyTypeVilla,
		SaleType:      models.SaleTypeSale,
		Phone:         "+20 100 123 4567",
	},
	{
		TitleEN:       "Modern Apartment in Zamalek",
		TitleAR:       "شقة حديثة في الزمالك",
		DescriptionEN: "Spacious 3-bedroom apartment with Nile view. Fully furnished with modern appliances.",
		DescriptionAR: "شقة واسعة بثلاثة غرف نوم مع إطلالة على النيل. مفروشة بالكامل مع أجهزة حديثة.",
		LocationEN:    "Zamalek, Cairo",
		LocationAR:    "الزمالك، القاهرة",
		Price:         25000,
		PropertyType:  models.PropertyTypeApartment,
		SaleType:      models.SaleTypeRent,
		Phone:         "+20 100 234 5678",
	},
	{
		TitleEN:       "Commercial Office in Smart Village",
		TitleAR:       "مكتب تجاري في القرية الذكية",
		DescriptionEN: "Premium office space 150 sqm, perfect for tech companies. High-speed internet included.",
		DescriptionAR: "مساحة مكتبية فاخرة 150 متر مربع، مثالية لشركات التكنولوجيا. إنترنت عالي السرعة متضمن.",
		LocationEN:    "Smart Village, Giza",
		LocationAR:    "القرية الذكية، الجيزة",
		Price:         45000,
		PropertyType:  models.PropertyTypeOffice,
		SaleType:      models.SaleTypeRent,
		Phone:         "+20 100 345 6789",
	},
	{
		TitleEN:       "Investment Land in 6th October",
		TitleAR:       "أرض استثمارية في 6 أكتوبر",
		DescriptionEN: "500 sqm land plot in prime location. Perfect for residential or commercial development.",
		DescriptionAR: "قطعة أرض 500 متر مربع في موقع رئيسي. مثالية للتطوير السكني أو التجاري.",
		LocationEN:    "6th October City",
		LocationAR:    "مدينة 6 أكتوبر",
		Price:         3500000,
		PropertyType:  models.PropertyTypeLand,
		SaleType:      models.SaleTypeSale,
		Phone:         "+20 100 456 7890",
	},
	{
		TitleEN:       "Cozy Apartment in Maadi",
		TitleAR:       "شقة مريحة في المعادي",
		DescriptionEN: "Charming 2-bedroom apartment in quiet neighborhood. Close to metro and amenities.",
		DescriptionAR: "شقة ساحرة من غرفتي نوم في حي هادئ. قريبة من المترو والمرافق.",
		LocationEN:    "Maadi, Cairo",
		LocationAR:    "المعادي، القاهرة",
		Price:         18000,
		PropertyType:  models.PropertyTypeApartment,
		SaleType:      models.SaleTypeRent,
		Phone:         "+20 100 567 8901",
	},
	{
		TitleEN:       "Beachfront Villa in North Coast",
		TitleAR:       "فيلا على البحر في الساحل الشمالي",
		DescriptionEN: "Stunning villa directly on the beach with private access. 5 bedrooms, fully equipped.",
		DescriptionAR: "فيلا مذهلة مباشرة على الشاطئ مع وصول خاص. 5 غرف نوم، مجهزة بالكامل.",
		LocationEN:    "North Coast",
		LocationAR:    "الساحل الشمالي",
		Price:         12000000,
		PropertyType:  models.PropertyTypeVilla,
		SaleType:      models.SaleTypeSale,
		Phone:         "+20 100 678 9012",
	},
	{
		TitleEN:       "Downtown Office Space",
		TitleAR:       "مساحة مكتبية وسط البلد",
		DescriptionEN: "Central office location, 200 sqm, ideal for startups and small businesses.",
		DescriptionAR: "موقع مكتبي مركزي، 200 متر مربع، مثالي للشركات الناشئة والصغيرة.",
		LocationEN:    "Downtown Cairo",
		LocationAR:    "وسط القاهرة",
		Price:         35000,
		PropertyType:  models.PropertyTypeOffice,
		SaleType:      models.SaleTypeRent,
		Phone:         "+20 100 789 0123",
	},
	{
		TitleEN:       "Family Apartment in Heliopolis",
		TitleAR:       "شقة عائلية في مصر الجديدة",
		DescriptionEN: "Spacious 4-bedroom apartment perfect for families. Near schools and shopping centers.",
		DescriptionAR: "شقة واسعة بأربعة غرف نوم مثالية للعائلات. بالقرب من المدارس ومراكز التسوق.",
		LocationEN:    "Heliopolis, Cairo",
		LocationAR:    "مصر الجديدة، القاهرة",
		Price:         4500000,
		PropertyType:  models.PropertyTypeApartment,
		SaleType:      models.SaleTypeSale,
		Phone:         "+20 100 890 1234",
	},
	{
		TitleEN:       "Agricultural Land in Fayoum",
		TitleAR:       "أرض زراعية في الفيوم",
		DescriptionEN: "2000 sqm agricultural land with water access. Great investment opportunity.",
		DescriptionAR: "أرض زراعية 2000 متر مربع مع إمكانية الوصول للمياه. فرصة استثمارية رائعة.",
		LocationEN:    "Fayoum",
		LocationAR:    "الفيوم",
		Price:         800000,
		PropertyType:  models.PropertyTypeLand,
		SaleType:      models.SaleTypeSale,
		Phone:         "+20 100 901 2345",
	},
	{
		TitleEN:       "Studio Apartment in New Capital",
		TitleAR:       "شقة استوديو في العاصمة الإدارية",
		DescriptionEN: "Modern studio apartment with smart home features. Perfect for young professionals.",
		DescriptionAR: "شقة استوديو حديثة مع ميزات المنزل الذكي. مثالية للمهنيين الشباب.",
		LocationEN:    "New Administrative Capital",
		LocationAR:    "العاصمة الإدارية الجديدة",
		Price:         15000,
		PropertyType:  models.PropertyTypeApartment,
		SaleType:      models.SaleTypeRent,
		Phone:         "+20 101 012 3456",
	},
	{
		TitleEN:       "Luxury Penthouse in Sheikh Zayed",
		TitleAR:       "بنتهاوس فاخر في الشيخ زايد",
		DescriptionEN: "Exclusive penthouse with panoramic views, 300 sqm, rooftop terrace and jacuzzi.",
		DescriptionAR: "بنتهاوس حصري مع إطلالات بانورامية، 300 متر مربع، تراس على السطح وجاكوزي.",
		LocationEN:    "Sheikh Zayed City",
		LocationAR:    "مدينة الشيخ زايد",
		Price:         9500000,
		PropertyType:  models.PropertyTypeApartment,
		SaleType:      models.SaleTypeSale,
		Phone:         "+20 101 123 4567",
	},
	{
		TitleEN:       "Medical Office in Dokki",
		TitleAR:       "عيادة طبية في الدقي",
		DescriptionEN: "Professional medical office, ground floor, 100 sqm with waiting area.",
		DescriptionAR: "عيادة طبية احترافية، الطابق الأرضي، 100 متر مربع مع منطقة انتظار.",
		LocationEN:    "Dokki, Giza",
		LocationAR:    "الدقي، الجيزة",
		Price:         30000,
		PropertyType:  models.PropertyTypeOffice,
		SaleType:      models.SaleTypeRent,
		Phone:         "+20 101 234 5678",
	},
	{
		TitleEN:       "Twin House in Compound",
		TitleAR:       "توين هاوس في كمبوند",
		DescriptionEN: "Beautiful twin house in gated community with pool, gym and security.",
		DescriptionAR: "توين هاوس جميل في مجمع سكني مغلق مع حمام سباحة وصالة رياضية وأمن.",
		LocationEN:    "5th Settlement, New Cairo",
		LocationAR:    "التجمع الخامس، القاهرة الجديدة",
		Price:         6500000,
		PropertyType:  models.PropertyTypeVilla,
		SaleType:      models.SaleTypeSale,
		Phone:         "+20 101 345 6789",
	},
	{
		TitleEN:       "Commercial Land in Alexandria",
		TitleAR:       "أرض تجارية في الإسكندرية",
		DescriptionEN: "1000 sqm commercial land on main road. High traffic area, excellent for retail.",
		DescriptionAR: "أرض تجارية 1000 متر مربع على طريق رئيسي. منطقة ذات حركة مرور عالية، ممتازة للبيع بالتجزئة.",
		LocationEN:    "Alexandria",
		LocationAR:    "الإسكندرية",
		Price:         5500000,
		PropertyType:  models.PropertyTypeLand,
		SaleType:      models.SaleTypeSale,
		Phone:         "+20 101 456 7890",
	},
	{
		TitleEN:       "Furnished Apartment in Nasr City",
		TitleAR:       "شقة مفروشة في مدينة نصر",
		DescriptionEN: "Fully furnished 3-bedroom apartment, ready to move in. All utilities included.",
		DescriptionAR: "شقة مفروشة بالكامل من 3 غرف نوم، جاهزة للانتقال. جميع المرافق متضمنة.",
		LocationEN:    "Nasr City, Cairo",
		LocationAR:    "مدينة نصر، القاهرة",
		Price:         22000,
		PropertyType:  models.PropertyTypeApartment,
		SaleType:      models.SaleTypeRent,
		Phone:         "+20 101 567 8901",
	},
}
