package offline

import "github.com/vbonduro/taptime/internal/domain"

// capitalSites places each country's capital, keyed by ISO code.
var capitalSites = map[string]domain.Coordinate{
	"AD": {Latitude: 42.51, Longitude: 1.52},
	"AE": {Latitude: 24.45, Longitude: 54.38},
	"AF": {Latitude: 34.53, Longitude: 69.17},
	"AL": {Latitude: 41.33, Longitude: 19.82},
	"AM": {Latitude: 40.18, Longitude: 44.51},
	"AO": {Latitude: -8.84, Longitude: 13.23},
	"AR": {Latitude: -34.60, Longitude: -58.38},
	"AT": {Latitude: 48.21, Longitude: 16.37},
	"AU": {Latitude: -35.28, Longitude: 149.13},
	"AZ": {Latitude: 40.41, Longitude: 49.87},
	"BA": {Latitude: 43.86, Longitude: 18.41},
	"BB": {Latitude: 13.10, Longitude: -59.61},
	"BD": {Latitude: 23.81, Longitude: 90.41},
	"BE": {Latitude: 50.85, Longitude: 4.35},
	"BF": {Latitude: 12.37, Longitude: -1.52},
	"BG": {Latitude: 42.70, Longitude: 23.32},
	"BH": {Latitude: 26.23, Longitude: 50.59},
	"BI": {Latitude: -3.43, Longitude: 29.93},
	"BJ": {Latitude: 6.50, Longitude: 2.60},
	"BN": {Latitude: 4.90, Longitude: 114.94},
	"BO": {Latitude: -16.50, Longitude: -68.15},
	"BR": {Latitude: -15.79, Longitude: -47.88},
	"BS": {Latitude: 25.05, Longitude: -77.35},
	"BT": {Latitude: 27.47, Longitude: 89.64},
	"BW": {Latitude: -24.65, Longitude: 25.91},
	"BY": {Latitude: 53.90, Longitude: 27.56},
	"BZ": {Latitude: 17.25, Longitude: -88.77},
	"CA": {Latitude: 45.42, Longitude: -75.70},
	"CD": {Latitude: -4.32, Longitude: 15.31},
	"CF": {Latitude: 4.39, Longitude: 18.56},
	"CG": {Latitude: -4.27, Longitude: 15.28},
	"CH": {Latitude: 46.95, Longitude: 7.45},
	"CL": {Latitude: -33.45, Longitude: -70.67},
	"CM": {Latitude: 3.87, Longitude: 11.52},
	"CN": {Latitude: 39.90, Longitude: 116.41},
	"CO": {Latitude: 4.71, Longitude: -74.07},
	"CR": {Latitude: 9.93, Longitude: -84.08},
	"CU": {Latitude: 23.11, Longitude: -82.37},
	"CV": {Latitude: 14.93, Longitude: -23.51},
	"CY": {Latitude: 35.17, Longitude: 33.36},
	"CZ": {Latitude: 50.08, Longitude: 14.44},
	"DE": {Latitude: 52.52, Longitude: 13.40},
	"DJ": {Latitude: 11.59, Longitude: 43.15},
	"DK": {Latitude: 55.68, Longitude: 12.57},
	"DM": {Latitude: 15.30, Longitude: -61.39},
	"DO": {Latitude: 18.49, Longitude: -69.93},
	"DZ": {Latitude: 36.75, Longitude: 3.06},
	"EC": {Latitude: -0.18, Longitude: -78.47},
	"EE": {Latitude: 59.44, Longitude: 24.75},
	"EG": {Latitude: 30.04, Longitude: 31.24},
	"ER": {Latitude: 15.32, Longitude: 38.93},
	"ES": {Latitude: 40.42, Longitude: -3.70},
	"ET": {Latitude: 9.03, Longitude: 38.74},
	"FI": {Latitude: 60.17, Longitude: 24.94},
	"FJ": {Latitude: -18.14, Longitude: 178.44},
	"FR": {Latitude: 48.86, Longitude: 2.35},
	"GA": {Latitude: 0.42, Longitude: 9.47},
	"GB": {Latitude: 51.51, Longitude: -0.13},
	"GE": {Latitude: 41.72, Longitude: 44.79},
	"GH": {Latitude: 5.60, Longitude: -0.19},
	"GM": {Latitude: 13.45, Longitude: -16.58},
	"GN": {Latitude: 9.64, Longitude: -13.58},
	"GQ": {Latitude: 3.75, Longitude: 8.78},
	"GR": {Latitude: 37.98, Longitude: 23.73},
	"GT": {Latitude: 14.63, Longitude: -90.51},
	"GW": {Latitude: 11.86, Longitude: -15.60},
	"GY": {Latitude: 6.80, Longitude: -58.16},
	"HN": {Latitude: 14.07, Longitude: -87.19},
	"HR": {Latitude: 45.81, Longitude: 15.98},
	"HT": {Latitude: 18.59, Longitude: -72.31},
	"HU": {Latitude: 47.50, Longitude: 19.04},
	"ID": {Latitude: -6.21, Longitude: 106.85},
	"IE": {Latitude: 53.35, Longitude: -6.26},
	"IL": {Latitude: 31.77, Longitude: 35.21},
	"IN": {Latitude: 28.61, Longitude: 77.21},
	"IQ": {Latitude: 33.31, Longitude: 44.36},
	"IR": {Latitude: 35.69, Longitude: 51.39},
	"IS": {Latitude: 64.15, Longitude: -21.94},
	"IT": {Latitude: 41.90, Longitude: 12.50},
	"JM": {Latitude: 18.00, Longitude: -76.79},
	"JO": {Latitude: 31.95, Longitude: 35.93},
	"JP": {Latitude: 35.68, Longitude: 139.69},
	"KE": {Latitude: -1.29, Longitude: 36.82},
	"KG": {Latitude: 42.87, Longitude: 74.59},
	"KH": {Latitude: 11.56, Longitude: 104.93},
	"KI": {Latitude: 1.33, Longitude: 172.98},
	"KM": {Latitude: -11.70, Longitude: 43.26},
	"KP": {Latitude: 39.04, Longitude: 125.76},
	"KR": {Latitude: 37.57, Longitude: 126.98},
	"KW": {Latitude: 29.38, Longitude: 47.98},
	"KZ": {Latitude: 51.17, Longitude: 71.45},
	"LA": {Latitude: 17.98, Longitude: 102.63},
	"LB": {Latitude: 33.89, Longitude: 35.50},
	"LI": {Latitude: 47.14, Longitude: 9.52},
	"LK": {Latitude: 6.93, Longitude: 79.86},
	"LR": {Latitude: 6.30, Longitude: -10.80},
	"LS": {Latitude: -29.32, Longitude: 27.48},
	"LT": {Latitude: 54.69, Longitude: 25.28},
	"LU": {Latitude: 49.61, Longitude: 6.13},
	"LV": {Latitude: 56.95, Longitude: 24.11},
	"LY": {Latitude: 32.89, Longitude: 13.19},
	"MA": {Latitude: 34.02, Longitude: -6.83},
	"MC": {Latitude: 43.74, Longitude: 7.42},
	"MD": {Latitude: 47.01, Longitude: 28.86},
	"ME": {Latitude: 42.43, Longitude: 19.26},
	"MG": {Latitude: -18.88, Longitude: 47.51},
	"ML": {Latitude: 12.64, Longitude: -8.00},
	"MM": {Latitude: 19.76, Longitude: 96.08},
	"MN": {Latitude: 47.89, Longitude: 106.91},
	"MR": {Latitude: 18.08, Longitude: -15.98},
	"MT": {Latitude: 35.90, Longitude: 14.51},
	"MU": {Latitude: -20.16, Longitude: 57.50},
	"MV": {Latitude: 4.18, Longitude: 73.51},
	"MW": {Latitude: -13.96, Longitude: 33.79},
	"MX": {Latitude: 19.43, Longitude: -99.13},
	"MY": {Latitude: 3.14, Longitude: 101.69},
	"MZ": {Latitude: -25.97, Longitude: 32.57},
	"NA": {Latitude: -22.56, Longitude: 17.08},
	"NE": {Latitude: 13.51, Longitude: 2.13},
	"NG": {Latitude: 9.08, Longitude: 7.40},
	"NI": {Latitude: 12.11, Longitude: -86.24},
	"NL": {Latitude: 52.37, Longitude: 4.90},
	"NO": {Latitude: 59.91, Longitude: 10.75},
	"NP": {Latitude: 27.72, Longitude: 85.32},
	"NZ": {Latitude: -41.29, Longitude: 174.78},
	"OM": {Latitude: 23.59, Longitude: 58.41},
	"PA": {Latitude: 8.98, Longitude: -79.52},
	"PE": {Latitude: -12.05, Longitude: -77.04},
	"PG": {Latitude: -9.44, Longitude: 147.18},
	"PH": {Latitude: 14.60, Longitude: 120.98},
	"PK": {Latitude: 33.68, Longitude: 73.05},
	"PL": {Latitude: 52.23, Longitude: 21.01},
	"PT": {Latitude: 38.72, Longitude: -9.14},
	"PY": {Latitude: -25.26, Longitude: -57.58},
	"QA": {Latitude: 25.29, Longitude: 51.53},
	"RO": {Latitude: 44.43, Longitude: 26.10},
	"RS": {Latitude: 44.79, Longitude: 20.45},
	"RU": {Latitude: 55.76, Longitude: 37.62},
	"RW": {Latitude: -1.95, Longitude: 30.06},
	"SA": {Latitude: 24.71, Longitude: 46.68},
	"SB": {Latitude: -9.43, Longitude: 159.95},
	"SC": {Latitude: -4.62, Longitude: 55.45},
	"SD": {Latitude: 15.50, Longitude: 32.56},
	"SE": {Latitude: 59.33, Longitude: 18.07},
	"SG": {Latitude: 1.35, Longitude: 103.82},
	"SI": {Latitude: 46.06, Longitude: 14.51},
	"SK": {Latitude: 48.15, Longitude: 17.11},
	"SL": {Latitude: 8.47, Longitude: -13.23},
	"SN": {Latitude: 14.72, Longitude: -17.47},
	"SO": {Latitude: 2.05, Longitude: 45.32},
	"SR": {Latitude: 5.85, Longitude: -55.20},
	"SV": {Latitude: 13.69, Longitude: -89.22},
	"SY": {Latitude: 33.51, Longitude: 36.28},
	"SZ": {Latitude: -26.31, Longitude: 31.14},
	"TD": {Latitude: 12.13, Longitude: 15.06},
	"TG": {Latitude: 6.13, Longitude: 1.22},
	"TH": {Latitude: 13.76, Longitude: 100.50},
	"TJ": {Latitude: 38.56, Longitude: 68.79},
	"TM": {Latitude: 37.96, Longitude: 58.33},
	"TN": {Latitude: 36.81, Longitude: 10.18},
	"TO": {Latitude: -21.14, Longitude: -175.20},
	"TR": {Latitude: 39.93, Longitude: 32.86},
	"TT": {Latitude: 10.66, Longitude: -61.51},
	"TW": {Latitude: 25.03, Longitude: 121.57},
	"TZ": {Latitude: -6.16, Longitude: 35.75},
	"UA": {Latitude: 50.45, Longitude: 30.52},
	"UG": {Latitude: 0.35, Longitude: 32.58},
	"US": {Latitude: 38.91, Longitude: -77.04},
	"UY": {Latitude: -34.90, Longitude: -56.16},
	"UZ": {Latitude: 41.30, Longitude: 69.24},
	"VE": {Latitude: 10.48, Longitude: -66.90},
	"VN": {Latitude: 21.03, Longitude: 105.85},
	"VU": {Latitude: -17.73, Longitude: 168.32},
	"YE": {Latitude: 15.37, Longitude: 44.19},
	"ZA": {Latitude: -25.75, Longitude: 28.19},
	"ZM": {Latitude: -15.39, Longitude: 28.32},
	"ZW": {Latitude: -17.83, Longitude: 31.05},
}

// secondaryCapitals covers countries whose other capital lies far from the
// first.
var secondaryCapitals = map[string]domain.Coordinate{
	"sucre":     {Latitude: -19.03, Longitude: -65.26},
	"cape town": {Latitude: -33.92, Longitude: 18.42},
}

func capitalSite(city, code string) (domain.Coordinate, bool) {
	if c, ok := secondaryCapitals[city]; ok {
		return c, true
	}
	c, ok := capitalSites[code]
	return c, ok
}
