package i18n

var en = map[string]string{
	"nav.home":        "Home",
	"nav.cart":        "Cart",
	"nav.search":      "Search the catalog",
	"nav.language":    "العربية",
	"home.title":      "Jewelry Catalog",
	"home.category":   "Category",
	"home.all":        "All categories",
	"home.empty":      "No items found.",
	"item.karat":      "Karat",
	"item.weight":     "Weight (g)",
	"item.price":      "Price",
	"item.was":        "Was",
	"item.stock":      "In stock",
	"item.outofstock": "Out of stock",
	"item.add":        "Add to cart",
	"cart.title":      "Your Cart",
	"cart.empty":      "Your cart is empty.",
	"cart.item":       "Item",
	"cart.qty":        "Qty",
	"cart.unit":       "Unit price",
	"cart.subtotal":   "Subtotal",
	"cart.total":      "Total",
	"cart.update":     "Update",
	"cart.remove":     "Remove",
	"cart.clear":      "Clear cart",
	"cart.checkout":   "Checkout",
	"checkout.title":  "Reserve your items",
	"checkout.name":   "Full name",
	"checkout.phone":  "Phone number",
	"checkout.submit": "Place reservation",
	"checkout.done":   "Reservation placed. We will contact you to confirm pickup.",
	"error.network":   "Network error. Please try again.",
	"error.generic":   "Something went wrong. Please try again.",
	"page.first":      "First",
	"page.prev":       "Prev",
	"page.next":       "Next",
	"page.last":       "Last",
}

var ar = map[string]string{
	"nav.home":        "الرئيسية",
	"nav.cart":        "السلة",
	"nav.search":      "ابحث في المعرض",
	"nav.language":    "English",
	"home.title":      "معرض المجوهرات",
	"home.category":   "الصنف",
	"home.all":        "كل الأصناف",
	"home.empty":      "لا توجد قطع.",
	"item.karat":      "العيار",
	"item.weight":     "الوزن (غم)",
	"item.price":      "السعر",
	"item.was":        "قبل الخصم",
	"item.stock":      "متوفر",
	"item.outofstock": "غير متوفر",
	"item.add":        "أضف إلى السلة",
	"cart.title":      "سلة المشتريات",
	"cart.empty":      "سلتك فارغة.",
	"cart.item":       "القطعة",
	"cart.qty":        "الكمية",
	"cart.unit":       "سعر الوحدة",
	"cart.subtotal":   "المجموع الفرعي",
	"cart.total":      "المجموع",
	"cart.update":     "تحديث",
	"cart.remove":     "إزالة",
	"cart.clear":      "إفراغ السلة",
	"cart.checkout":   "إتمام الحجز",
	"checkout.title":  "احجز قطعك",
	"checkout.name":   "الاسم الكامل",
	"checkout.phone":  "رقم الهاتف",
	"checkout.submit": "تأكيد الحجز",
	"checkout.done":   "تم الحجز. سنتواصل معك لتأكيد الاستلام.",
	"error.network":   "خطأ في الاتصال. حاول مرة أخرى.",
	"error.generic":   "حدث خطأ ما. حاول مرة أخرى.",
	"page.first":      "الأولى",
	"page.prev":       "السابق",
	"page.next":       "التالي",
	"page.last":       "الأخيرة",
}
