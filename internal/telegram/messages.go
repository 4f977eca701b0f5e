package telegram

// User-facing strings, kept in the original bot's voice.
const (
	msgWelcome         = "سلام به ربات مترجم خوش آمدید زبان مقصد را انتخاب کنید"
	msgSelectTarget    = "زبان مقصد را انتخاب کنید"
	msgEnterText       = "متن را وارد کنید: \n برای تغییر زبان مقصد دکمه زیر را فشار دهید."
	msgSelectFirst     = "ابتدا زبان مقصد را وارد کنید,برای انتخاب دستور /start را وارد کنید."
	msgTranslation     = "ترجمه: \n"
	msgNoSpeech        = "صدایی در این پیام تشخیص داده نشد، دوباره تلاش کنید."
	msgNoAudioTrack    = "این ویدیو صدا ندارد."
	msgTimeout         = "پاسخی از سرویس دریافت نشد، کمی بعد دوباره تلاش کنید."
	msgFetchFailed     = "دریافت فایل از تلگرام ممکن نشد، دوباره تلاش کنید."
	msgBadMedia        = "پردازش این فایل ممکن نیست، فرمت آن پشتیبانی نمی‌شود."
	msgSelectionFailed = "ذخیره زبان مقصد انجام نشد، دوباره تلاش کنید."
	msgUnsupported     = "این نوع پیام پشتیبانی نمی‌شود. متن، ویس یا ویدیو بفرستید."
	msgGenericError    = "اوه خطا زد از اول شروع کن /start"

	btnChangeTarget = "تغییر زبان مقصد"
)
