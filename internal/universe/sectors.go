package universe

// sectorMap tags tickers with a coarse sector, used for grouping in the
// compare endpoint and the daily report.
var sectorMap = map[string]string{
	// Indian IT
	"TCS.NS":      "IT",
	"INFY.NS":     "IT",
	"HCLTECH.NS":  "IT",
	"WIPRO.NS":    "IT",
	"TECHM.NS":    "IT",
	"LTIM.NS":     "IT",
	"MINDTREE.NS": "IT",
	"MPHASIS.NS":  "IT",
	"COFORGE.NS":  "IT",
	"ZENSAR.NS":   "IT",

	// Indian banking
	"HDFCBANK.NS":   "Banking",
	"ICICIBANK.NS":  "Banking",
	"SBIN.NS":       "Banking",
	"AXISBANK.NS":   "Banking",
	"KOTAKBANK.NS":  "Banking",
	"INDUSINDBK.NS": "Banking",
	"BANDHANBNK.NS": "Banking",
	"FEDERALBNK.NS": "Banking",
	"IDFCFIRSTB.NS": "Banking",
	"RBLBANK.NS":    "Banking",

	// Indian pharma
	"SUNPHARMA.NS":  "Pharma",
	"DRREDDY.NS":    "Pharma",
	"CIPLA.NS":      "Pharma",
	"LUPIN.NS":      "Pharma",
	"AUROPHARMA.NS": "Pharma",
	"TORNTPHARM.NS": "Pharma",
	"GLENMARK.NS":   "Pharma",
	"CADILAHC.NS":   "Pharma",
	"DIVISLAB.NS":   "Pharma",
	"BIOCON.NS":     "Pharma",

	// Indian FMCG
	"HINDUNILVR.NS": "FMCG",
	"ITC.NS":        "FMCG",
	"NESTLEIND.NS":  "FMCG",
	"BRITANNIA.NS":  "FMCG",
	"DABUR.NS":      "FMCG",
	"MARICO.NS":     "FMCG",
	"GODREJCP.NS":   "FMCG",
	"COLPAL.NS":     "FMCG",
	"EMAMILTD.NS":   "FMCG",
	"JUBLFOOD.NS":   "FMCG",

	// Indian energy
	"RELIANCE.NS": "Energy",
	"ONGC.NS":     "Energy",
	"IOC.NS":      "Energy",
	"BPCL.NS":     "Energy",
	"GAIL.NS":     "Energy",

	// Indian auto
	"MARUTI.NS":     "Auto",
	"TATAMOTORS.NS": "Auto",
	"M&M.NS":        "Auto",
	"BAJAJ-AUTO.NS": "Auto",
	"EICHERMOT.NS":  "Auto",

	// Indian metals
	"TATASTEEL.NS": "Steel",
	"JSWSTEEL.NS":  "Steel",
	"VEDL.NS":      "Metals",

	// Indian telecom / infra / financials
	"BHARTIARTL.NS": "Telecom",
	"LT.NS":         "Infrastructure",
	"ADANIPORTS.NS": "Infrastructure",
	"ULTRACEMCO.NS": "Infrastructure",
	"HDFC.NS":       "Financials",
	"BAJFINANCE.NS": "Financials",

	// US technology
	"AAPL":  "Technology",
	"MSFT":  "Technology",
	"GOOGL": "Technology",
	"AMZN":  "Technology",
	"NVDA":  "Technology",
	"META":  "Technology",
	"TSLA":  "Technology",
	"AVGO":  "Technology",
	"ADBE":  "Technology",
	"NFLX":  "Technology",
	"INTC":  "Technology",
	"CSCO":  "Technology",
	"CRM":   "Technology",
	"AMD":   "Technology",
	"ORCL":  "Technology",

	// US healthcare
	"UNH":  "Healthcare",
	"LLY":  "Healthcare",
	"PFE":  "Healthcare",
	"ABBV": "Healthcare",
	"MRK":  "Healthcare",
	"JNJ":  "Healthcare",
	"TMO":  "Healthcare",
	"MDT":  "Healthcare",
	"BMY":  "Healthcare",
	"AMGN": "Healthcare",

	// US financials
	"JPM": "Financials",
	"BAC": "Financials",
	"WFC": "Financials",
	"C":   "Financials",
	"GS":  "Financials",
	"MS":  "Financials",
	"V":   "Financials",
	"MA":  "Financials",
	"BLK": "Financials",
	"AXP": "Financials",

	// US energy
	"XOM": "Energy",
	"CVX": "Energy",
	"COP": "Energy",
	"SLB": "Energy",
	"EOG": "Energy",
	"MPC": "Energy",
	"PSX": "Energy",
	"KMI": "Energy",
	"OXY": "Energy",
	"VLO": "Energy",

	// US consumer
	"WMT":  "Consumer",
	"COST": "Consumer",
	"PG":   "Consumer",
	"KO":   "Consumer",
	"PEP":  "Consumer",
}
