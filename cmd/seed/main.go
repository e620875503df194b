// Command seed inserts the starter question set into an empty database.
// Running it against a populated database is a no-op.
package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"

	"github.com/deenanswers/qa-system/internal/core/domain"
	"github.com/deenanswers/qa-system/internal/infrastructure/config"
	mongodb "github.com/deenanswers/qa-system/internal/infrastructure/db/mongo"
	"github.com/deenanswers/qa-system/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	ctx := context.Background()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	repo := mongodb.NewQuestionRepository(db)

	existing, err := repo.FindAll(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("seed check failed")
	}
	if len(existing) > 0 {
		log.Info().Int("questions", len(existing)).Msg("data already exists, nothing to do")
		return
	}

	questions := starterQuestions()
	for _, q := range questions {
		if _, err := repo.Insert(ctx, q); err != nil {
			log.Fatal().Err(err).Str("question", q.Question).Msg("seed insert failed")
		}
	}

	log.Info().Int("inserted", len(questions)).Msg("starter content seeded")
}

// starterQuestions is the initial approved content, staggered over the
// previous month so the newest/oldest sorts have something to show.
func starterQuestions() []*domain.Question {
	now := time.Now().UnixMilli()
	daysAgo := func(d int64) int64 { return now - d*24*60*60*1000 }

	return []*domain.Question{
		{
			Question:  "নামাজের ওয়াক্ত সময় কীভাবে নির্ধারণ করা হয়?",
			Answer:    "নামাজের ওয়াক্ত সূর্যের অবস্থান অনুযায়ী নির্ধারিত হয়। ফজর সূর্যোদয়ের আগে, জোহর দুপুরের পরে, আসর বিকেলে, মাগরিব সূর্যাস্তের পরে এবং এশা রাতে আদায় করা হয়। প্রতিটি ওয়াক্তের নির্দিষ্ট সময় রয়েছে যা কুরআন ও হাদিস দ্বারা নির্ধারিত।",
			Category:  "নামাজ",
			Tags:      []string{"নামাজ", "ওয়াক্ত", "সময়"},
			Views:     1250,
			Helpful:   890,
			CreatedAt: daysAgo(30),
			Status:    domain.StatusApproved,
			Source:    domain.SourceAdmin,
		},
		{
			Question:  "রমজান মাসে রোজা রাখা কি সকলের জন্য বাধ্যতামূলক?",
			Answer:    "সুস্থ, প্রাপ্তবয়স্ক মুসলিমদের জন্য রমজানে রোজা রাখা ফরজ। তবে অসুস্থ, ভ্রমণরত, গর্ভবতী বা স্তন্যদায়ী মায়েদের জন্য ছাড় রয়েছে এবং পরে তা কাজা করতে হয়। শিশু, বৃদ্ধ এবং দীর্ঘমেয়াদী অসুস্থদের জন্যও বিশেষ বিধান রয়েছে।",
			Category:  "রোজা",
			Tags:      []string{"রোজা", "রমজান", "ফরজ"},
			Views:     980,
			Helpful:   756,
			CreatedAt: daysAgo(25),
			Status:    domain.StatusApproved,
			Source:    domain.SourceAdmin,
		},
		{
			Question:  "যাকাত দেওয়ার নিয়ম কী?",
			Answer:    "নেসাব পরিমাণ সম্পদের মালিক হলে বছরে একবার ২.৫% হারে যাকাত দিতে হয়। এটি গরিব, মিসকিন এবং অভাবগ্রস্তদের মধ্যে বিতরণ করা হয়। সোনা, রূপা, নগদ অর্থ এবং ব্যবসায়িক পণ্যের উপর যাকাত প্রযোজ্য।",
			Category:  "যাকাত",
			Tags:      []string{"যাকাত", "দান", "নেসাব"},
			Views:     1120,
			Helpful:   834,
			CreatedAt: daysAgo(20),
			Status:    domain.StatusApproved,
			Source:    domain.SourceAdmin,
		},
		{
			Question:  "কুরআন তেলাওয়াতের সঠিক নিয়ম কী?",
			Answer:    "কুরআন তেলাওয়াতের জন্য পবিত্র থাকতে হবে, তাজভিদের নিয়ম মেনে তিলাওয়াত করতে হবে এবং অর্থ বুঝে পড়ার চেষ্টা করতে হবে। ওজু করে, কিবলামুখী হয়ে এবং আউজুবিল্লাহ ও বিসমিল্লাহ পড়ে শুরু করা উত্তম।",
			Category:  "কুরআন",
			Tags:      []string{"কুরআন", "তেলাওয়াত", "তাজভিদ"},
			Views:     1450,
			Helpful:   1123,
			CreatedAt: daysAgo(15),
			Status:    domain.StatusApproved,
			Source:    domain.SourceAdmin,
		},
		{
			Question:  "হজ্জ কখন এবং কীভাবে করতে হয়?",
			Answer:    "জিলহজ মাসের ৮ থেকে ১২ তারিখে হজ্জ পালন করা হয়। এটি শারীরিক ও আর্থিকভাবে সক্ষম প্রত্যেক মুসলিমের জন্য জীবনে একবার ফরজ। হজ্জের মধ্যে মিনা, আরাফাত ও মুযদালিফায় অবস্থান এবং কাবা তওয়াফ অন্তর্ভুক্ত।",
			Category:  "হজ্জ",
			Tags:      []string{"হজ্জ", "মক্কা", "ইবাদত"},
			Views:     890,
			Helpful:   673,
			CreatedAt: daysAgo(10),
			Status:    domain.StatusApproved,
			Source:    domain.SourceAdmin,
		},
		{
			Question:  "ইসলামে দান-সদকার গুরুত্ব কী?",
			Answer:    "দান-সদকা আল্লাহর সন্তুষ্টি অর্জনের মাধ্যম। এটি সম্পদ বৃদ্ধি করে এবং পাপ মোচন করে। নবী (সা.) বলেছেন, সদকা দাতার সম্পদ কমায় না। নিয়মিত দান করা সামাজিক ভারসাম্য রক্ষা করে এবং আল্লাহর রহমত লাভের উপায়।",
			Category:  "আমল",
			Tags:      []string{"সদকা", "দান", "আমল"},
			Views:     1340,
			Helpful:   967,
			CreatedAt: daysAgo(8),
			Status:    domain.StatusApproved,
			Source:    domain.SourceAdmin,
		},
		{
			Question:  "উমরাহ এবং হজ্জের মধ্যে পার্থক্য কী?",
			Answer:    "হজ্জ ফরজ এবং নির্দিষ্ট সময়ে পালন করতে হয়, কিন্তু উমরাহ সুন্নত এবং যেকোনো সময় করা যায়। হজ্জের আরকান বেশি এবং এতে আরাফাতে অবস্থান বাধ্যতামূলক, কিন্তু উমরাহতে শুধু তওয়াফ ও সাঈ করতে হয়।",
			Category:  "হজ্জ",
			Tags:      []string{"হজ্জ", "উমরাহ", "তফাৎ"},
			Views:     756,
			Helpful:   543,
			CreatedAt: daysAgo(7),
			Status:    domain.StatusApproved,
			Source:    domain.SourceAdmin,
		},
		{
			Question:  "তাহাজ্জুদ নামাজের নিয়ম কী?",
			Answer:    "তাহাজ্জুদ রাতের শেষ তৃতীয়াংশে পড়া হয়। এটি অত্যন্ত ফজিলতপূর্ণ নফল নামাজ। সাধারণত ২ রাকাত করে ৮-১২ রাকাত পড়া হয়। এশার পর ঘুমিয়ে উঠে পড়লে তাহাজ্জুদ হয়, নাহলে তা কিয়ামুল লাইল বলে গণ্য হয়।",
			Category:  "নামাজ",
			Tags:      []string{"তাহাজ্জুদ", "নফল", "রাত্রি"},
			Views:     1890,
			Helpful:   1456,
			CreatedAt: daysAgo(6),
			Status:    domain.StatusApproved,
			Source:    domain.SourceAdmin,
		},
		{
			Question:  "জুমার নামাজের গুরুত্ব কী?",
			Answer:    "জুমার নামাজ প্রাপ্তবয়স্ক মুসলিম পুরুষদের জন্য ফরজ। এটি শুক্রবার জোহরের সময় জামাতের সাথে পড়তে হয়। খুতবা শোনা এবং দুই রাকাত জুমার নামাজ আদায় করা আবশ্যক। এটি সপ্তাহের সবচেয়ে গুরুত্বপূর্ণ ইবাদত।",
			Category:  "নামাজ",
			Tags:      []string{"জুমা", "শুক্রবার", "জামাত"},
			Views:     2134,
			Helpful:   1678,
			CreatedAt: daysAgo(5),
			Status:    domain.StatusApproved,
			Source:    domain.SourceAdmin,
		},
		{
			Question:  "ফিতরা কখন এবং কীভাবে দিতে হয়?",
			Answer:    "সদকাতুল ফিতর ঈদের নামাজের আগে দিতে হয়। প্রতিজন মুসলিমের পক্ষ থেকে নির্দিষ্ট পরিমাণ খাদ্য বা সমপরিমাণ অর্থ দরিদ্রদের দিতে হয়। এটি রোজার ত্রুটি-বিচ্যুতি দূর করে এবং দরিদ্রদের ঈদের আনন্দে শরিক করে।",
			Category:  "রোজা",
			Tags:      []string{"ফিতরা", "ঈদ", "সদকা"},
			Views:     1567,
			Helpful:   1234,
			CreatedAt: daysAgo(4),
			Status:    domain.StatusApproved,
			Source:    domain.SourceAdmin,
		},
		{
			Question:  "হাদিস এবং কুরআনের মধ্যে সম্পর্ক কী?",
			Answer:    "কুরআন আল্লাহর বাণী এবং ইসলামের মূল উৎস। হাদিস নবী (সা.) এর বাণী ও কর্ম যা কুরআনের ব্যাখ্যা প্রদান করে। কুরআন বুঝতে এবং প্রয়োগ করতে হাদিস অপরিহার্য। উভয়ই একসাথে শরীয়তের ভিত্তি গঠন করে।",
			Category:  "হাদিস",
			Tags:      []string{"হাদিস", "কুরআন", "শরীয়ত"},
			Views:     1890,
			Helpful:   1456,
			CreatedAt: daysAgo(3),
			Status:    domain.StatusApproved,
			Source:    domain.SourceAdmin,
		},
		{
			Question:  "কোরবানির নিয়ম ও শর্ত কী?",
			Answer:    "ঈদুল আযহার দিনে সামর্থ্যবান মুসলিমদের কোরবানি দেওয়া ওয়াজিব। নির্দিষ্ট বয়স ও গুণমানের পশু কোরবানি করতে হয়। মাংস তিন ভাগ করে নিজের, আত্মীয় ও গরিবদের মধ্যে বণ্টন করা সুন্নত। এটি ইবরাহিম (আ.) এর ত্যাগের স্মরণে পালিত হয়।",
			Category:  "কোরবানি",
			Tags:      []string{"কোরবানি", "ঈদ", "পশু"},
			Views:     1456,
			Helpful:   1123,
			CreatedAt: daysAgo(1),
			Status:    domain.StatusApproved,
			Source:    domain.SourceAdmin,
		},
	}
}
