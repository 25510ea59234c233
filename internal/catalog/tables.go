package catalog

// countryZones lists the zones offered for a country. Countries missing here
// are resolved through geocoding instead.
var countryZones = map[string][]string{
	"US": {"America/New_York", "America/Chicago", "America/Denver", "America/Los_Angeles", "America/Anchorage", "Pacific/Honolulu"},
	"AU": {"Australia/Sydney", "Australia/Adelaide", "Australia/Darwin", "Australia/Perth", "Australia/Brisbane"},
	"CA": {"America/St_Johns", "America/Halifax", "America/Toronto", "America/Winnipeg", "America/Edmonton", "America/Vancouver"},
	"RU": {"Europe/Moscow", "Europe/Samara", "Asia/Yekaterinburg", "Asia/Omsk", "Asia/Krasnoyarsk", "Asia/Irkutsk", "Asia/Yakutsk", "Asia/Vladivostok", "Asia/Kamchatka"},
	"BR": {"America/Sao_Paulo", "America/Manaus", "America/Rio_Branco", "America/Noronha"},
	"CN": {"Asia/Shanghai"},
	"IN": {"Asia/Kolkata"},
	"MX": {"America/Mexico_City", "America/Chihuahua", "America/Tijuana"},
	"ID": {"Asia/Jakarta", "Asia/Makassar", "Asia/Jayapura"},
	"CL": {"America/Santiago", "Pacific/Easter"},
	"NZ": {"Pacific/Auckland", "Pacific/Chatham"},
	"PT": {"Europe/Lisbon", "Atlantic/Azores"},
	"ES": {"Europe/Madrid", "Atlantic/Canary"},
	"GB": {"Europe/London"},
	"FR": {"Europe/Paris"},
	"DE": {"Europe/Berlin"},
	"JP": {"Asia/Tokyo"},
	"KR": {"Asia/Seoul"},
	"ZA": {"Africa/Johannesburg"},
	"AR": {"America/Argentina/Buenos_Aires"},
	"EG": {"Africa/Cairo"},
	"NG": {"Africa/Lagos"},
	"KE": {"Africa/Nairobi"},
	"AE": {"Asia/Dubai"},
	"SA": {"Asia/Riyadh"},
	"TH": {"Asia/Bangkok"},
	"SG": {"Asia/Singapore"},
	"MY": {"Asia/Kuala_Lumpur"},
	"PH": {"Asia/Manila"},
	"PK": {"Asia/Karachi"},
	"BD": {"Asia/Dhaka"},
	"TR": {"Europe/Istanbul"},
	"UA": {"Europe/Kyiv"},
	"PL": {"Europe/Warsaw"},
	"IT": {"Europe/Rome"},
	"SE": {"Europe/Stockholm"},
	"NO": {"Europe/Oslo"},
	"FI": {"Europe/Helsinki"},
	"DK": {"Europe/Copenhagen"},
	"NL": {"Europe/Amsterdam"},
	"BE": {"Europe/Brussels"},
	"CH": {"Europe/Zurich"},
	"AT": {"Europe/Vienna"},
	"GR": {"Europe/Athens"},
	"IE": {"Europe/Dublin"},
	"IL": {"Asia/Jerusalem"},
	"CO": {"America/Bogota"},
	"PE": {"America/Lima"},
	"VE": {"America/Caracas"},
	"EC": {"America/Guayaquil", "Pacific/Galapagos"},
}

// aliases maps informal names to ISO codes. Keys are lowercase.
var aliases = map[string]string{
	"usa":           "US",
	"us":            "US",
	"uk":            "GB",
	"england":       "GB",
	"britain":       "GB",
	"great britain": "GB",
	"uae":           "AE",
	"south korea":   "KR",
	"north korea":   "KP",
	"russia":        "RU",
	"nz":            "NZ",
}

// aliasDisplayNames are the alias spellings offered by autocomplete.
var aliasDisplayNames = []string{
	"USA", "US", "UK", "England", "Britain", "Great Britain",
	"UAE", "South Korea", "North Korea", "Russia", "NZ",
}

// capitals maps lowercase capital city names to ISO codes.
var capitals = map[string]string{
	"kabul": "AF", "tirana": "AL", "algiers": "DZ", "andorra la vella": "AD",
	"luanda": "AO", "buenos aires": "AR", "yerevan": "AM", "canberra": "AU",
	"vienna": "AT", "baku": "AZ", "nassau": "BS", "manama": "BH", "dhaka": "BD",
	"bridgetown": "BB", "minsk": "BY", "brussels": "BE", "belmopan": "BZ",
	"porto-novo": "BJ", "thimphu": "BT", "la paz": "BO", "sucre": "BO",
	"sarajevo": "BA", "gaborone": "BW", "brasilia": "BR", "bandar seri begawan": "BN",
	"sofia": "BG", "ouagadougou": "BF", "gitega": "BI", "phnom penh": "KH",
	"yaounde": "CM", "ottawa": "CA", "praia": "CV", "bangui": "CF",
	"n'djamena": "TD", "santiago": "CL", "beijing": "CN", "bogota": "CO",
	"moroni": "KM", "kinshasa": "CD", "brazzaville": "CG", "san jose": "CR",
	"zagreb": "HR", "havana": "CU", "nicosia": "CY", "prague": "CZ",
	"copenhagen": "DK", "djibouti": "DJ", "roseau": "DM", "santo domingo": "DO",
	"quito": "EC", "cairo": "EG", "san salvador": "SV", "malabo": "GQ",
	"asmara": "ER", "tallinn": "EE", "addis ababa": "ET", "suva": "FJ",
	"helsinki": "FI", "paris": "FR", "libreville": "GA", "banjul": "GM",
	"tbilisi": "GE", "berlin": "DE", "accra": "GH", "athens": "GR",
	"guatemala city": "GT", "conakry": "GN", "bissau": "GW", "georgetown": "GY",
	"port-au-prince": "HT", "tegucigalpa": "HN", "budapest": "HU",
	"reykjavik": "IS", "new delhi": "IN", "delhi": "IN", "jakarta": "ID",
	"tehran": "IR", "baghdad": "IQ", "dublin": "IE", "jerusalem": "IL",
	"rome": "IT", "kingston": "JM", "tokyo": "JP", "amman": "JO",
	"astana": "KZ", "nairobi": "KE", "tarawa": "KI", "pyongyang": "KP",
	"seoul": "KR", "kuwait city": "KW", "bishkek": "KG", "vientiane": "LA",
	"riga": "LV", "beirut": "LB", "maseru": "LS", "monrovia": "LR",
	"tripoli": "LY", "vaduz": "LI", "vilnius": "LT", "luxembourg": "LU",
	"antananarivo": "MG", "lilongwe": "MW", "kuala lumpur": "MY", "male": "MV",
	"bamako": "ML", "valletta": "MT", "nouakchott": "MR", "port louis": "MU",
	"mexico city": "MX", "chisinau": "MD", "monaco": "MC", "ulaanbaatar": "MN",
	"podgorica": "ME", "rabat": "MA", "maputo": "MZ", "naypyidaw": "MM",
	"windhoek": "NA", "kathmandu": "NP", "amsterdam": "NL", "wellington": "NZ",
	"managua": "NI", "niamey": "NE", "abuja": "NG", "oslo": "NO", "muscat": "OM",
	"islamabad": "PK", "panama city": "PA", "port moresby": "PG", "asuncion": "PY",
	"lima": "PE", "manila": "PH", "warsaw": "PL", "lisbon": "PT", "doha": "QA",
	"bucharest": "RO", "moscow": "RU", "kigali": "RW", "riyadh": "SA",
	"dakar": "SN", "belgrade": "RS", "victoria": "SC", "freetown": "SL",
	"singapore": "SG", "bratislava": "SK", "ljubljana": "SI", "honiara": "SB",
	"mogadishu": "SO", "pretoria": "ZA", "cape town": "ZA", "madrid": "ES",
	"colombo": "LK", "khartoum": "SD", "paramaribo": "SR", "mbabane": "SZ",
	"stockholm": "SE", "bern": "CH", "damascus": "SY", "taipei": "TW",
	"dushanbe": "TJ", "dodoma": "TZ", "bangkok": "TH", "lome": "TG",
	"nuku'alofa": "TO", "port of spain": "TT", "tunis": "TN", "ankara": "TR",
	"ashgabat": "TM", "kampala": "UG", "kyiv": "UA", "kiev": "UA",
	"abu dhabi": "AE", "london": "GB", "washington": "US", "washington dc": "US",
	"washington d.c.": "US", "montevideo": "UY", "tashkent": "UZ",
	"port vila": "VU", "caracas": "VE", "hanoi": "VN", "sanaa": "YE",
	"lusaka": "ZM", "harare": "ZW",
}

// isoCountryCodes are the ISO 3166-1 alpha-2 codes whose English names are
// searchable.
var isoCountryCodes = []string{
	"AD", "AE", "AF", "AG", "AI", "AL", "AM", "AO", "AQ", "AR", "AS", "AT", "AU", "AW", "AX", "AZ",
	"BA", "BB", "BD", "BE", "BF", "BG", "BH", "BI", "BJ", "BL", "BM", "BN", "BO", "BQ", "BR", "BS",
	"BT", "BV", "BW", "BY", "BZ", "CA", "CC", "CD", "CF", "CG", "CH", "CI", "CK", "CL", "CM", "CN",
	"CO", "CR", "CU", "CV", "CW", "CX", "CY", "CZ", "DE", "DJ", "DK", "DM", "DO", "DZ", "EC", "EE",
	"EG", "EH", "ER", "ES", "ET", "FI", "FJ", "FK", "FM", "FO", "FR", "GA", "GB", "GD", "GE", "GF",
	"GG", "GH", "GI", "GL", "GM", "GN", "GP", "GQ", "GR", "GS", "GT", "GU", "GW", "GY", "HK", "HM",
	"HN", "HR", "HT", "HU", "ID", "IE", "IL", "IM", "IN", "IO", "IQ", "IR", "IS", "IT", "JE", "JM",
	"JO", "JP", "KE", "KG", "KH", "KI", "KM", "KN", "KP", "KR", "KW", "KY", "KZ", "LA", "LB", "LC",
	"LI", "LK", "LR", "LS", "LT", "LU", "LV", "LY", "MA", "MC", "MD", "ME", "MF", "MG", "MH", "MK",
	"ML", "MM", "MN", "MO", "MP", "MQ", "MR", "MS", "MT", "MU", "MV", "MW", "MX", "MY", "MZ", "NA",
	"NC", "NE", "NF", "NG", "NI", "NL", "NO", "NP", "NR", "NU", "NZ", "OM", "PA", "PE", "PF", "PG",
	"PH", "PK", "PL", "PM", "PN", "PR", "PS", "PT", "PW", "PY", "QA", "RE", "RO", "RS", "RU", "RW",
	"SA", "SB", "SC", "SD", "SE", "SG", "SH", "SI", "SJ", "SK", "SL", "SM", "SN", "SO", "SR", "SS",
	"ST", "SV", "SX", "SY", "SZ", "TC", "TD", "TF", "TG", "TH", "TJ", "TK", "TL", "TM", "TN", "TO",
	"TR", "TT", "TV", "TW", "TZ", "UA", "UG", "UM", "US", "UY", "UZ", "VA", "VC", "VE", "VG", "VI",
	"VN", "VU", "WF", "WS", "XK", "YE", "YT", "ZA", "ZM", "ZW",
}
