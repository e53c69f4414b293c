package ledger

// auctionABI covers the subset of the deployed auction contract the gateway uses.
const auctionABI = `[
  {"type":"function","name":"getHistoricalAuctionCount","stateMutability":"view","inputs":[],
   "outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","name":"getAuction","stateMutability":"view",
   "inputs":[{"name":"index","type":"uint256"}],
   "outputs":[{"name":"product","type":"string"},{"name":"winner","type":"address"},
              {"name":"bid","type":"uint256"},{"name":"endTime","type":"uint256"}]},
  {"type":"function","name":"bids","stateMutability":"view",
   "inputs":[{"name":"","type":"uint256"},{"name":"","type":"address"}],
   "outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","name":"currentProduct","stateMutability":"view","inputs":[],
   "outputs":[{"name":"","type":"string"}]},
  {"type":"function","name":"highestBid","stateMutability":"view","inputs":[],
   "outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","name":"highestBidder","stateMutability":"view","inputs":[],
   "outputs":[{"name":"","type":"address"}]},
  {"type":"function","name":"auctionEndTime","stateMutability":"view","inputs":[],
   "outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","name":"auctionActive","stateMutability":"view","inputs":[],
   "outputs":[{"name":"","type":"bool"}]},
  {"type":"function","name":"admin","stateMutability":"view","inputs":[],
   "outputs":[{"name":"","type":"address"}]},
  {"type":"function","name":"placeBid","stateMutability":"payable","inputs":[],"outputs":[]},
  {"type":"function","name":"endAuction","stateMutability":"nonpayable","inputs":[],"outputs":[]},
  {"type":"function","name":"withdraw","stateMutability":"nonpayable",
   "inputs":[{"name":"auctionId","type":"uint256"}],"outputs":[]},
  {"type":"function","name":"startNewAuction","stateMutability":"nonpayable",
   "inputs":[{"name":"product","type":"string"},{"name":"durationMinutes","type":"uint256"}],"outputs":[]},
  {"type":"function","name":"changeAdmin","stateMutability":"nonpayable",
   "inputs":[{"name":"newAdmin","type":"address"}],"outputs":[]}
]`

const (
	methodHistoricalCount = "getHistoricalAuctionCount"
	methodGetAuction      = "getAuction"
	methodBids            = "bids"
	methodCurrentProduct  = "currentProduct"
	methodHighestBid      = "highestBid"
	methodHighestBidder   = "highestBidder"
	methodAuctionEndTime  = "auctionEndTime"
	methodAuctionActive   = "auctionActive"
	methodAdmin           = "admin"

	methodPlaceBid        = "placeBid"
	methodEndAuction      = "endAuction"
	methodWithdraw        = "withdraw"
	methodStartNewAuction = "startNewAuction"
	methodChangeAdmin     = "changeAdmin"
)
