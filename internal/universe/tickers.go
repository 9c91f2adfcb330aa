package universe

// indianTickers is the NSE large-cap list, grouped by sector. NSE symbols
// carry the .NS suffix; the BSE variant would use .BO.
var indianTickers = []string{
	// IT / Technology
	"TCS.NS",
	"INFY.NS",
	"HCLTECH.NS",
	"WIPRO.NS",
	"TECHM.NS",
	"LTIM.NS",
	"MINDTREE.NS",
	"MPHASIS.NS",
	"COFORGE.NS",
	"ZENSAR.NS",

	// Banking / Financial services
	"HDFCBANK.NS",
	"ICICIBANK.NS",
	"SBIN.NS",
	"AXISBANK.NS",
	"KOTAKBANK.NS",
	"INDUSINDBK.NS",
	"BANDHANBNK.NS",
	"FEDERALBNK.NS",
	"IDFCFIRSTB.NS",
	"RBLBANK.NS",

	// Pharma / Healthcare
	"SUNPHARMA.NS",
	"DRREDDY.NS",
	"CIPLA.NS",
	"LUPIN.NS",
	"AUROPHARMA.NS",
	"TORNTPHARM.NS",
	"GLENMARK.NS",
	"CADILAHC.NS",
	"DIVISLAB.NS",
	"BIOCON.NS",

	// FMCG / Consumer goods
	"HINDUNILVR.NS",
	"ITC.NS",
	"NESTLEIND.NS",
	"BRITANNIA.NS",
	"DABUR.NS",
	"MARICO.NS",
	"GODREJCP.NS",
	"COLPAL.NS",
	"EMAMILTD.NS",
	"JUBLFOOD.NS",

	// Energy / Oil & gas
	"RELIANCE.NS",
	"ONGC.NS",
	"IOC.NS",
	"BPCL.NS",
	"GAIL.NS",

	// Auto
	"MARUTI.NS",
	"TATAMOTORS.NS",
	"M&M.NS",
	"BAJAJ-AUTO.NS",
	"EICHERMOT.NS",

	// Metals / Mining
	"TATASTEEL.NS",
	"JSWSTEEL.NS",
	"VEDL.NS",

	// Telecom
	"BHARTIARTL.NS",

	// Infrastructure / Engineering
	"LT.NS",
	"ADANIPORTS.NS",
	"ULTRACEMCO.NS",

	// Diversified financials
	"HDFC.NS",
	"BAJFINANCE.NS",
}

// usTickers is the NYSE/NASDAQ large-cap list.
var usTickers = []string{
	// Technology
	"AAPL",
	"MSFT",
	"GOOGL",
	"AMZN",
	"NVDA",
	"META",
	"TSLA",
	"AVGO",
	"ADBE",
	"NFLX",
	"INTC",
	"CSCO",
	"CRM",
	"AMD",
	"ORCL",

	// Healthcare
	"UNH",
	"LLY",
	"PFE",
	"ABBV",
	"MRK",
	"JNJ",
	"TMO",
	"MDT",
	"BMY",
	"AMGN",

	// Financials
	"JPM",
	"BAC",
	"WFC",
	"C",
	"GS",
	"MS",
	"V",
	"MA",
	"BLK",
	"AXP",

	// Energy
	"XOM",
	"CVX",
	"COP",
	"SLB",
	"EOG",
	"MPC",
	"PSX",
	"KMI",
	"OXY",
	"VLO",

	// Consumer
	"WMT",
	"COST",
	"PG",
	"KO",
	"PEP",
}
