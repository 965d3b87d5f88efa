package reviewlens

// sampleReviews is a small demonstration dataset of product reviews.
var sampleReviews = []Review{
	{1, "Absolutely love this product! The quality is outstanding and it arrived very fast. Great packaging too. Highly recommend!"},
	{2, "Terrible experience. The product was damaged when it arrived and customer service was not helpful at all. Very disappointed."},
	{3, "Good product overall. The quality is decent but the delivery was extremely late. Took almost 3 weeks to arrive."},
	{4, "Amazing! Best purchase I've made this year. The material is premium quality and the price is very affordable. Customer service was friendly and professional."},
	{5, "Not worth the money. The product feels cheap and flimsy. Packaging was terrible and the box was crushed."},
	{6, "Pretty good. Easy to use and setup was simple. The product quality is solid and delivery was quick."},
	{7, "Worst purchase ever. The product is completely broken and useless. Tried to contact support but got no response. Total waste of money."},
	{8, "Excellent product! Very happy with the quality. The delivery was fast and the packaging was neat and secure."},
	{9, "The product is okay but overpriced. Quality is average and nothing special. Delivery was on time though."},
	{10, "Fantastic! The build quality is exceptional and it's very durable. Great value for money. Shipping was super fast too."},
	{11, "Disappointed with the quality. The material feels cheap and it broke after just one week. Customer service was rude when I complained."},
	{12, "Love it! Beautiful design and very comfortable to use. The product exceeded my expectations. Highly satisfied!"},
	{13, "Terrible packaging. The box arrived damaged and the product inside was scratched. Not happy with this purchase."},
	{14, "Great product at a great price! The quality is impressive and delivery was really quick. Would definitely buy again."},
	{15, "The product is fine but the delivery was a nightmare. It was delayed by 2 weeks and no one provided updates. Very frustrating."},
	{16, "Perfect! Exactly what I needed. The quality is superb and the customer service team was very helpful when I had questions."},
	{17, "Not as described. The product looks different from the pictures and the quality is poor. Feels like a scam."},
	{18, "Good value for the price. The product works well and is easy to use. Delivery was fast and packaging was good."},
	{19, "Awful experience. The product arrived late, was damaged, and customer support ignored my emails. Never buying again."},
	{20, "Wonderful product! The quality is amazing and it's very durable. Shipping was incredibly fast. Very pleased with this purchase!"},
}

// SampleReviews returns a copy of the demonstration dataset.
func SampleReviews() []Review {
	return append([]Review(nil), sampleReviews...)
}
