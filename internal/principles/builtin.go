package principles

// Builtin is the published list of principles for building in crypto by Jake
// (https://farcaster.xyz/jake/0x23e58327).
var Builtin = []Principle{
	{ID: 1, Text: "underpromise, overdeliver"},
	{ID: 2, Text: "better for market cap to lag product than vice versa"},
	{ID: 3, Text: "buyback strategically, not automatically"},
	{ID: 4, Text: "include caveats and context in public communications"},
	{ID: 5, Text: "default to public communications vs. groups & DMs"},
	{ID: 6, Text: "don't state things as fact which are not objectively true"},
	{ID: 7, Text: "don't call things \"inevitable\""},
	{ID: 8, Text: "don't be sarcastic in ways that harm if misunderstood"},
	{ID: 9, Text: "don't tell or advise people to buy the token"},
	{ID: 10, Text: "state facts frequently and reference sources as able"},
	{ID: 11, Text: "be authentic, transparent, and straight forward"},
	{ID: 12, Text: "work hard and smart not one or the other"},
	{ID: 13, Text: "experiment freely with one-time things"},
	{ID: 14, Text: "it is hard to predict outcomes of actions in advance"},
	{ID: 15, Text: "reject recurring commitments by default"},
	{ID: 16, Text: "minimize maintenance required to run the product"},
	{ID: 17, Text: "work with as few people as possible"},
	{ID: 18, Text: "do the part that you are great at, hire a complement"},
	{ID: 19, Text: "what makes sense in theory may not work in practice"},
	{ID: 20, Text: "try not to get down about market cap when it's down"},
	{ID: 21, Text: "it's ok to let market cap add motivation when it's up"},
	{ID: 22, Text: "crypto is extremely nascent, no one knows the future"},
	{ID: 23, Text: "if it was easy and obvious everyone would be doing it"},
	{ID: 24, Text: "best practices are not always the best practices"},
	{ID: 25, Text: "listen to feedback from top users, ignore it from haters"},
	{ID: 26, Text: "unanimous feedback may very well be wrong"},
	{ID: 27, Text: "if it's a toss-up, try the thing that is more different"},
	{ID: 28, Text: "design little things you love even if no one will care"},
	{ID: 29, Text: "always be aware of t-x implications to avoid big traps"},
	{ID: 30, Text: "the vast majority of what you ship no one will care"},
	{ID: 31, Text: "if it is not extremely simple, no one will understand it"},
	{ID: 32, Text: "assume people need to see it 20x before they notice"},
	{ID: 33, Text: "assume every incremental click has a 99% churn"},
	{ID: 34, Text: "it is easier to be prolific than perfect on the internet"},
	{ID: 35, Text: "do things you are mostly interested in, stop the rest"},
	{ID: 36, Text: "every passion project includes some tedious work"},
	{ID: 37, Text: "one-time actions are rarely a waste of time"},
	{ID: 38, Text: "recurring commitments and costs are what kill you"},
	{ID: 39, Text: "make money ethically and responsibly or else don't"},
	{ID: 40, Text: "treat people fairly and check that they feel that way"},
	{ID: 41, Text: "you will never make all users, holders, etc. happy"},
	{ID: 42, Text: "seize opportunities to delight people unexpectedly"},
	{ID: 43, Text: "never get so risky with investments you can blow up"},
	{ID: 44, Text: "good investments can be bad if the ride steals focus"},
}
