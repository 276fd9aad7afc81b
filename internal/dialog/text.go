package dialog

// User-facing copy. Kept in one place so the engine logic stays
// readable.
const (
	textCaptchaWrong   = "Wrong captcha. Try again."
	textReferralPrompt = "✏️ Enter your code word:"
	textReferralWrong  = "Invalid code. Send it again."
	textRegistered     = "✅ Registration complete!"

	textChooseRegion        = "Choose a region:"
	textChooseRegionForCity = "Choose a region for your new city:"

	textCancelled = "❌ Process cancelled.\nUse /start to begin again."

	textCityChanged = "✅ City changed!"

	alertNoRegions      = "No regions available."
	alertNoCities       = "No cities in this region."
	alertNoStores       = "No stores in this city."
	alertNoProducts     = "No products in this store."
	alertNoStoreData    = "No store data."
	alertNoLocationData = "No region/city data."
	alertNoRegionData   = "No region data."
	alertCityGone       = "Your saved city is no longer available."
	alertNoFurtherBack  = "Cannot go back further."

	labelBack       = "⬅️ Back"
	labelCancel     = "❌ Cancel"
	labelConfirm    = "✅ Confirm"
	labelBackToMenu = "⬅️ Back"
)

const (
	textJobs = "💼 Jobs\n\n" +
		"We are looking for couriers and store assistants in every region.\n" +
		"Flexible hours, weekly payout.\n\n" +
		"👉 Contact the manager: @manager_nick"

	textPurchases = "Your purchases:\n(No data)"

	textRules = "📜 Rules\n\n" +
		"1. One order at a time: confirm or cancel before starting another.\n" +
		"2. Orders are binding once confirmed.\n" +
		"3. Pickup details are sent after payment is settled.\n" +
		"4. Questions go to the manager, not to the bot.\n\n" +
		"👉 Manager: @manager_nick"

	textInfo = "ℹ️ How it works\n\n" +
		"• Pick your city (if you have not yet).\n" +
		"• Open Locations and choose a store near you.\n" +
		"• Choose a product and confirm the order.\n" +
		"• Payment and pickup instructions follow separately.\n\n" +
		"👉 Support: @manager_nick"

	textReviews = "User reviews:\n(No reviews yet)"
)

// infoScreens maps menu action tokens to their static screens
var infoScreens = map[string]string{
	TokenMenuJobs:      textJobs,
	TokenMenuPurchases: textPurchases,
	TokenMenuRules:     textRules,
	TokenMenuInfo:      textInfo,
	TokenMenuReviews:   textReviews,
}
