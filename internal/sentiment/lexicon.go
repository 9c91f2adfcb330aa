package sentiment

// buildLexicon returns the equity-news lexicon. Weights follow the same
// scale the crypto analyzer used: 1.0 for unambiguous direction words,
// tapering to 0.4 for weak signals. Subjectivity is high for hype and fear
// vocabulary, low for factual reporting verbs.
func buildLexicon() map[string]lexEntry {
	return map[string]lexEntry{
		// Strongly bullish
		"bullish":     {1.0, 0.8},
		"soar":        {0.9, 0.7},
		"soars":       {0.9, 0.7},
		"surge":       {0.8, 0.6},
		"surges":      {0.8, 0.6},
		"rally":       {0.8, 0.6},
		"rallies":     {0.8, 0.6},
		"skyrocket":   {0.9, 0.9},
		"record":      {0.6, 0.4},
		"breakout":    {0.7, 0.6},
		"outperform":  {0.7, 0.5},
		"outperforms": {0.7, 0.5},

		// Earnings / results
		"beat":     {0.7, 0.3},
		"beats":    {0.7, 0.3},
		"exceed":   {0.6, 0.3},
		"exceeds":  {0.6, 0.3},
		"tops":     {0.6, 0.3},
		"strong":   {0.6, 0.5},
		"robust":   {0.6, 0.5},
		"profit":   {0.5, 0.2},
		"profits":  {0.5, 0.2},
		"growth":   {0.5, 0.3},
		"grows":    {0.5, 0.3},
		"expands":  {0.5, 0.3},
		"dividend": {0.4, 0.2},
		"buyback":  {0.5, 0.3},

		// Analyst / corporate actions, positive
		"upgrade":     {0.7, 0.4},
		"upgraded":    {0.7, 0.4},
		"upgrades":    {0.7, 0.4},
		"buy":         {0.5, 0.4},
		"overweight":  {0.5, 0.4},
		"wins":        {0.6, 0.3},
		"win":         {0.6, 0.3},
		"approval":    {0.6, 0.3},
		"approved":    {0.6, 0.3},
		"partnership": {0.5, 0.3},
		"acquisition": {0.4, 0.3},
		"expansion":   {0.5, 0.3},
		"launch":      {0.4, 0.3},
		"launches":    {0.4, 0.3},
		"positive":    {0.5, 0.5},
		"optimistic":  {0.5, 0.7},
		"gain":        {0.6, 0.3},
		"gains":       {0.6, 0.3},
		"rise":        {0.5, 0.3},
		"rises":       {0.5, 0.3},
		"jump":        {0.6, 0.4},
		"jumps":       {0.6, 0.4},
		"up":          {0.4, 0.3},
		"high":        {0.4, 0.3},
		"higher":      {0.4, 0.3},

		// Strongly bearish
		"bearish":       {-1.0, 0.8},
		"crash":         {-1.0, 0.8},
		"crashes":       {-1.0, 0.8},
		"plunge":        {-0.8, 0.7},
		"plunges":       {-0.8, 0.7},
		"collapse":      {-0.9, 0.8},
		"tumble":        {-0.7, 0.6},
		"tumbles":       {-0.7, 0.6},
		"slump":         {-0.7, 0.6},
		"slumps":        {-0.7, 0.6},
		"selloff":       {-0.7, 0.6},
		"rout":          {-0.8, 0.7},
		"panic":         {-0.8, 0.9},
		"fear":          {-0.6, 0.8},
		"crisis":        {-0.7, 0.6},
		"bankruptcy":    {-1.0, 0.4},
		"default":       {-0.8, 0.4},
		"fraud":         {-1.0, 0.5},
		"scandal":       {-0.8, 0.6},
		"probe":         {-0.5, 0.4},
		"investigation": {-0.5, 0.4},
		"lawsuit":       {-0.6, 0.4},
		"penalty":       {-0.6, 0.3},
		"fine":          {-0.5, 0.3},
		"recall":        {-0.6, 0.3},

		// Earnings / results, negative
		"miss":       {-0.7, 0.3},
		"misses":     {-0.7, 0.3},
		"loss":       {-0.7, 0.2},
		"losses":     {-0.7, 0.2},
		"weak":       {-0.6, 0.5},
		"slowdown":   {-0.5, 0.4},
		"decline":    {-0.6, 0.3},
		"declines":   {-0.6, 0.3},
		"shrinks":    {-0.5, 0.3},
		"cut":        {-0.4, 0.3},
		"cuts":       {-0.4, 0.3},
		"layoffs":    {-0.6, 0.3},
		"writedown":  {-0.6, 0.3},
		"impairment": {-0.5, 0.3},

		// Analyst / corporate actions, negative
		"downgrade":   {-0.7, 0.4},
		"downgraded":  {-0.7, 0.4},
		"downgrades":  {-0.7, 0.4},
		"sell":        {-0.5, 0.4},
		"underweight": {-0.5, 0.4},
		"negative":    {-0.5, 0.5},
		"pessimistic": {-0.5, 0.7},
		"warns":       {-0.5, 0.4},
		"warning":     {-0.5, 0.4},
		"fall":        {-0.6, 0.3},
		"falls":       {-0.6, 0.3},
		"drop":        {-0.6, 0.3},
		"drops":       {-0.6, 0.3},
		"sinks":       {-0.6, 0.4},
		"down":        {-0.4, 0.3},
		"low":         {-0.4, 0.3},
		"lower":       {-0.4, 0.3},
		"volatile":    {-0.3, 0.5},
		"uncertainty": {-0.4, 0.6},
		"overvalued":  {-0.6, 0.7},
	}
}
